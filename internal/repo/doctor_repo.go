package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medconnect/medconnect-api/internal/models"
)

type DoctorStore interface {
	Insert(ctx context.Context, doc *models.Doctor) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	Approve(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error)
}

type DoctorRepo struct {
	col *mongo.Collection
}

func NewDoctorRepo(s *Store) *DoctorRepo {
	return &DoctorRepo{col: s.DB.Collection(doctorsCollection)}
}

func (r *DoctorRepo) Insert(ctx context.Context, doc *models.Doctor) (primitive.ObjectID, error) {
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, err
	}
	return doc.ID, nil
}

func (r *DoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doc models.Doctor
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Approve sets the approval flag by primary key and reports the update counts.
func (r *DoctorRepo) Approve(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"approval": "true"}})
	if err != nil {
		return 0, 0, err
	}
	return result.MatchedCount, result.ModifiedCount, nil
}
