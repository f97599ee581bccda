package holidays

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

type HolidayCalendarMongoRepository struct {
	Collection *mongo.Collection
}

func NewHolidayCalendarMongoRepository(db *mongo.Client, dbName string) contracts.HolidayCalendarRepository {
	return &HolidayCalendarMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHolidayCalendars),
	}
}

func (r *HolidayCalendarMongoRepository) FindByID(ctx context.Context, calendarID string) (*models.HolidayCalendar, error) {
	var calendar models.HolidayCalendar
	err := r.Collection.FindOne(ctx, bson.M{"_id": calendarID}).Decode(&calendar)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &calendar, nil
}

func (r *HolidayCalendarMongoRepository) Upsert(ctx context.Context, calendar *models.HolidayCalendar) error {
	filter := bson.M{"_id": calendar.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, calendar, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

type HolidayDateMongoRepository struct {
	Collection *mongo.Collection
}

func NewHolidayDateMongoRepository(db *mongo.Client, dbName string) contracts.HolidayDateRepository {
	return &HolidayDateMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHolidayDates),
	}
}

func (r *HolidayDateMongoRepository) FindByID(ctx context.Context, holidayDateID string) (*models.HolidayDate, error) {
	var holidayDate models.HolidayDate
	err := r.Collection.FindOne(ctx, bson.M{"_id": holidayDateID}).Decode(&holidayDate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &holidayDate, nil
}

func (r *HolidayDateMongoRepository) FindByCalendarID(ctx context.Context, calendarID string) ([]models.HolidayDate, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"calendar_id": calendarID}, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	holidayDates := []models.HolidayDate{}
	if err := cursor.All(ctx, &holidayDates); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return holidayDates, nil
}

func (r *HolidayDateMongoRepository) FindByCalendarIDAndDate(ctx context.Context, calendarID, date string) (*models.HolidayDate, error) {
	var holidayDate models.HolidayDate
	err := r.Collection.FindOne(ctx, bson.M{"calendar_id": calendarID, "date": date}).Decode(&holidayDate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &holidayDate, nil
}

func (r *HolidayDateMongoRepository) Upsert(ctx context.Context, holidayDate *models.HolidayDate) error {
	filter := bson.M{"_id": holidayDate.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, holidayDate, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HolidayDateMongoRepository) Delete(ctx context.Context, holidayDateID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": holidayDateID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
