package shifttemplates

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

type ShiftTemplateMongoRepository struct {
	Collection *mongo.Collection
}

func NewShiftTemplateMongoRepository(db *mongo.Client, dbName string) contracts.ShiftTemplateRepository {
	return &ShiftTemplateMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionShiftTemplates),
	}
}

func (r *ShiftTemplateMongoRepository) FindAll(ctx context.Context) ([]models.ShiftTemplate, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	templates := []models.ShiftTemplate{}
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return templates, nil
}

func (r *ShiftTemplateMongoRepository) FindByID(ctx context.Context, templateID string) (*models.ShiftTemplate, error) {
	var template models.ShiftTemplate
	err := r.Collection.FindOne(ctx, bson.M{"_id": templateID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &template, nil
}

func (r *ShiftTemplateMongoRepository) FindByIDs(ctx context.Context, templateIDs []string) ([]models.ShiftTemplate, error) {
	if len(templateIDs) == 0 {
		return []models.ShiftTemplate{}, nil
	}
	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": templateIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	templates := []models.ShiftTemplate{}
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return templates, nil
}

func (r *ShiftTemplateMongoRepository) Upsert(ctx context.Context, template *models.ShiftTemplate) error {
	filter := bson.M{"_id": template.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, template, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ShiftTemplateMongoRepository) Delete(ctx context.Context, templateID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": templateID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
