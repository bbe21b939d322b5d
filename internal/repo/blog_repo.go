package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medconnect/medconnect-api/internal/models"
)

type BlogStore interface {
	Insert(ctx context.Context, post *models.BlogPost) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.BlogPost, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type BlogRepo struct {
	col *mongo.Collection
}

func NewBlogRepo(s *Store) *BlogRepo {
	return &BlogRepo{col: s.DB.Collection(blogCollection)}
}

func (r *BlogRepo) Insert(ctx context.Context, post *models.BlogPost) (primitive.ObjectID, error) {
	post.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, post); err != nil {
		return primitive.NilObjectID, err
	}
	return post.ID, nil
}

func (r *BlogRepo) List(ctx context.Context) ([]models.BlogPost, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *BlogRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
