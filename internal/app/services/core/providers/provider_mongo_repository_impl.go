package providers

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

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) contracts.ProviderRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

func (r *ProviderMongoRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	providers := []models.Provider{}
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return providers, nil
}

func (r *ProviderMongoRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	var provider models.Provider
	err := r.Collection.FindOne(ctx, bson.M{"_id": providerID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (r *ProviderMongoRepository) Upsert(ctx context.Context, provider *models.Provider) error {
	filter := bson.M{"_id": provider.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, provider, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) Delete(ctx context.Context, providerID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": providerID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
