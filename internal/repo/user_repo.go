package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medconnect/medconnect-api/internal/models"
)

// UserStore is what the signup handlers need from the users collection.
type UserStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.User, error)
}

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(s *Store) *UserRepo {
	return &UserRepo{col: s.DB.Collection(usersCollection)}
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepo) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	_, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicateEmail
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
