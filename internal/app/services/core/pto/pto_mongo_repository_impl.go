package pto

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

type PtoCalendarMongoRepository struct {
	Collection *mongo.Collection
}

func NewPtoCalendarMongoRepository(db *mongo.Client, dbName string) contracts.PtoCalendarRepository {
	return &PtoCalendarMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPtoCalendars),
	}
}

func (r *PtoCalendarMongoRepository) FindByID(ctx context.Context, calendarID string) (*models.PtoCalendar, error) {
	var calendar models.PtoCalendar
	err := r.Collection.FindOne(ctx, bson.M{"_id": calendarID}).Decode(&calendar)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &calendar, nil
}

func (r *PtoCalendarMongoRepository) Upsert(ctx context.Context, calendar *models.PtoCalendar) error {
	filter := bson.M{"_id": calendar.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, calendar, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

type PtoEntryMongoRepository struct {
	Collection *mongo.Collection
}

func NewPtoEntryMongoRepository(db *mongo.Client, dbName string) contracts.PtoEntryRepository {
	return &PtoEntryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPtoEntries),
	}
}

func (r *PtoEntryMongoRepository) FindByID(ctx context.Context, ptoEntryID string) (*models.PtoEntry, error) {
	var entry models.PtoEntry
	err := r.Collection.FindOne(ctx, bson.M{"_id": ptoEntryID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &entry, nil
}

func (r *PtoEntryMongoRepository) FindByCalendarID(ctx context.Context, calendarID string) ([]models.PtoEntry, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"calendar_id": calendarID}, options.Find().SetSort(bson.M{"start_date": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	entries := []models.PtoEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

func (r *PtoEntryMongoRepository) Upsert(ctx context.Context, ptoEntry *models.PtoEntry) error {
	filter := bson.M{"_id": ptoEntry.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, ptoEntry, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PtoEntryMongoRepository) Delete(ctx context.Context, ptoEntryID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": ptoEntryID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
