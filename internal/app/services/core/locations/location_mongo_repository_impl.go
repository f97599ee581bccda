package locations

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

type LocationMongoRepository struct {
	Collection *mongo.Collection
}

func NewLocationMongoRepository(db *mongo.Client, dbName string) contracts.LocationRepository {
	return &LocationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLocations),
	}
}

func (r *LocationMongoRepository) FindAll(ctx context.Context) ([]models.Location, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	locations := []models.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return locations, nil
}

func (r *LocationMongoRepository) FindByID(ctx context.Context, locationID string) (*models.Location, error) {
	var location models.Location
	err := r.Collection.FindOne(ctx, bson.M{"_id": locationID}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &location, nil
}

func (r *LocationMongoRepository) Upsert(ctx context.Context, location *models.Location) error {
	filter := bson.M{"_id": location.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, location, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *LocationMongoRepository) Delete(ctx context.Context, locationID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": locationID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
