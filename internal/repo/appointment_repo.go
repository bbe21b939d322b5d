package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medconnect/medconnect-api/internal/models"
)

type AppointmentStore interface {
	Insert(ctx context.Context, apt *models.Appointment) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Appointment, error)
	MarkPaid(ctx context.Context, transactionID string) (int64, error)
	DeleteByTransaction(ctx context.Context, transactionID string) (int64, error)
}

type AppointmentRepo struct {
	col *mongo.Collection
}

func NewAppointmentRepo(s *Store) *AppointmentRepo {
	return &AppointmentRepo{col: s.DB.Collection(appointmentsCollection)}
}

func (r *AppointmentRepo) Insert(ctx context.Context, apt *models.Appointment) (primitive.ObjectID, error) {
	apt.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, apt); err != nil {
		return primitive.NilObjectID, err
	}
	return apt.ID, nil
}

func (r *AppointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// MarkPaid flips paidStatus on the appointment holding this transaction id
// and reports how many records changed.
func (r *AppointmentRepo) MarkPaid(ctx context.Context, transactionID string) (int64, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"transactionId": transactionID},
		bson.M{"$set": bson.M{"paidStatus": true}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *AppointmentRepo) DeleteByTransaction(ctx context.Context, transactionID string) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"transactionId": transactionID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
