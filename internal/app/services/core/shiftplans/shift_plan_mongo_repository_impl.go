package shiftplans

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

type ShiftPlanMongoRepository struct {
	Collection *mongo.Collection
}

func NewShiftPlanMongoRepository(db *mongo.Client, dbName string) contracts.ShiftPlanRepository {
	return &ShiftPlanMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionShiftPlans),
	}
}

func (r *ShiftPlanMongoRepository) FindAll(ctx context.Context) ([]models.ShiftPlan, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	plans := []models.ShiftPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return plans, nil
}

func (r *ShiftPlanMongoRepository) FindByID(ctx context.Context, planID string) (*models.ShiftPlan, error) {
	var plan models.ShiftPlan
	err := r.Collection.FindOne(ctx, bson.M{"_id": planID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &plan, nil
}

func (r *ShiftPlanMongoRepository) FindByIDs(ctx context.Context, planIDs []string) ([]models.ShiftPlan, error) {
	if len(planIDs) == 0 {
		return []models.ShiftPlan{}, nil
	}
	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": planIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	plans := []models.ShiftPlan{}
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return plans, nil
}

func (r *ShiftPlanMongoRepository) Upsert(ctx context.Context, plan *models.ShiftPlan) error {
	filter := bson.M{"_id": plan.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, plan, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ShiftPlanMongoRepository) Delete(ctx context.Context, planID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": planID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

type ShiftPlanSlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewShiftPlanSlotMongoRepository(db *mongo.Client, dbName string) contracts.ShiftPlanSlotRepository {
	return &ShiftPlanSlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionShiftPlanSlots),
	}
}

func (r *ShiftPlanSlotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.ShiftPlanSlot, error) {
	var slot models.ShiftPlanSlot
	err := r.Collection.FindOne(ctx, bson.M{"_id": slotID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *ShiftPlanSlotMongoRepository) FindByIDs(ctx context.Context, slotIDs []string) ([]models.ShiftPlanSlot, error) {
	if len(slotIDs) == 0 {
		return []models.ShiftPlanSlot{}, nil
	}
	return r.findSlots(ctx, bson.M{"_id": bson.M{"$in": slotIDs}})
}

func (r *ShiftPlanSlotMongoRepository) FindByPlanID(ctx context.Context, planID string) ([]models.ShiftPlanSlot, error) {
	return r.findSlots(ctx, bson.M{"shift_plan_id": planID})
}

func (r *ShiftPlanSlotMongoRepository) FindByPlanIDs(ctx context.Context, planIDs []string) ([]models.ShiftPlanSlot, error) {
	if len(planIDs) == 0 {
		return []models.ShiftPlanSlot{}, nil
	}
	return r.findSlots(ctx, bson.M{"shift_plan_id": bson.M{"$in": planIDs}})
}

func (r *ShiftPlanSlotMongoRepository) findSlots(ctx context.Context, filter bson.M) ([]models.ShiftPlanSlot, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"cycle_index": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := []models.ShiftPlanSlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *ShiftPlanSlotMongoRepository) Upsert(ctx context.Context, slot *models.ShiftPlanSlot) error {
	filter := bson.M{"_id": slot.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, slot, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ShiftPlanSlotMongoRepository) Delete(ctx context.Context, slotID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": slotID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
