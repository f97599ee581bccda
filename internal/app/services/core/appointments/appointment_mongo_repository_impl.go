package appointments

import (
	"context"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByProviderIDAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error) {
	return r.findAppointments(ctx, bson.M{"provider_id": providerID, "date": date})
}

func (r *AppointmentMongoRepository) FindByProviderIDBetween(ctx context.Context, providerID, fromDate, toDate string) ([]models.Appointment, error) {
	return r.findAppointments(ctx, bson.M{
		"provider_id": providerID,
		"date":        bson.M{"$gte": fromDate, "$lte": toDate},
	})
}

func (r *AppointmentMongoRepository) findAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
