package occurrences

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

type ShiftOccurrenceMongoRepository struct {
	Collection *mongo.Collection
}

func NewShiftOccurrenceMongoRepository(db *mongo.Client, dbName string) contracts.ShiftOccurrenceRepository {
	return &ShiftOccurrenceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionShiftOccurrences),
	}
}

func (r *ShiftOccurrenceMongoRepository) FindByAssignmentIDAndDate(ctx context.Context, assignmentID, date string) (*models.ShiftOccurrence, error) {
	var occurrence models.ShiftOccurrence
	err := r.Collection.FindOne(ctx, bson.M{"assignment_id": assignmentID, "date": date}).Decode(&occurrence)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &occurrence, nil
}

func (r *ShiftOccurrenceMongoRepository) FindByAssignmentIDs(ctx context.Context, assignmentIDs []string, fromDate, toDate string) ([]models.ShiftOccurrence, error) {
	if len(assignmentIDs) == 0 {
		return []models.ShiftOccurrence{}, nil
	}
	filter := bson.M{
		"assignment_id": bson.M{"$in": assignmentIDs},
		"date":          bson.M{"$gte": fromDate, "$lte": toDate},
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	occurrencesList := []models.ShiftOccurrence{}
	if err := cursor.All(ctx, &occurrencesList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return occurrencesList, nil
}

func (r *ShiftOccurrenceMongoRepository) Upsert(ctx context.Context, occurrence *models.ShiftOccurrence) error {
	filter := bson.M{"_id": occurrence.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, occurrence, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ShiftOccurrenceMongoRepository) Delete(ctx context.Context, occurrenceID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": occurrenceID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
