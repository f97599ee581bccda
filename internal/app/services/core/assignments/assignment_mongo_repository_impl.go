package assignments

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

type ProviderAssignmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderAssignmentMongoRepository(db *mongo.Client, dbName string) contracts.ProviderAssignmentRepository {
	return &ProviderAssignmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviderAssignments),
	}
}

func (r *ProviderAssignmentMongoRepository) FindAll(ctx context.Context) ([]models.ProviderAssignment, error) {
	return r.findAssignments(ctx, bson.M{})
}

func (r *ProviderAssignmentMongoRepository) FindByID(ctx context.Context, assignmentID string) (*models.ProviderAssignment, error) {
	var assignment models.ProviderAssignment
	err := r.Collection.FindOne(ctx, bson.M{"_id": assignmentID}).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assignment, nil
}

func (r *ProviderAssignmentMongoRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.ProviderAssignment, error) {
	return r.findAssignments(ctx, bson.M{"provider_id": providerID})
}

func (r *ProviderAssignmentMongoRepository) findAssignments(ctx context.Context, filter bson.M) ([]models.ProviderAssignment, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"effective_date": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	assignments := []models.ProviderAssignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assignments, nil
}

func (r *ProviderAssignmentMongoRepository) Upsert(ctx context.Context, assignment *models.ProviderAssignment) error {
	filter := bson.M{"_id": assignment.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, assignment, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderAssignmentMongoRepository) Delete(ctx context.Context, assignmentID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": assignmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
