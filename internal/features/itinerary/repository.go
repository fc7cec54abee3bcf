package itinerary

import (
	"context"
	"errors"
	"time"

	"sacred-journey/internal/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *Itinerary) error
	FindAll(ctx context.Context) ([]Itinerary, error)
	FindByID(ctx context.Context, id string) (*Itinerary, error)
	FindByGroupID(ctx context.Context, groupID string) (*Itinerary, error)
	Update(ctx context.Context, id string, update *ItineraryUpdate) (*Itinerary, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ItineraryRepositoryImpl struct {
	collection *mongo.Collection
}

func NewItineraryRepository(db *database.MongodbDB) ItineraryRepository {
	return &ItineraryRepositoryImpl{
		collection: db.DB.Collection("itineraries"),
	}
}

func (r *ItineraryRepositoryImpl) Create(ctx context.Context, itinerary *Itinerary) error {
	if itinerary.ID == "" {
		itinerary.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	itinerary.CreatedAt = now
	itinerary.UpdatedAt = now

	if itinerary.Included == nil {
		itinerary.Included = []string{}
	}
	if itinerary.NotIncluded == nil {
		itinerary.NotIncluded = []string{}
	}
	if itinerary.DailySchedule == nil {
		itinerary.DailySchedule = []DailySchedule{}
	}

	_, err := r.collection.InsertOne(ctx, itinerary)
	return err
}

func (r *ItineraryRepositoryImpl) FindAll(ctx context.Context) ([]Itinerary, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	itineraries := []Itinerary{}
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}

	return itineraries, nil
}

func (r *ItineraryRepositoryImpl) FindByID(ctx context.Context, id string) (*Itinerary, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *ItineraryRepositoryImpl) FindByGroupID(ctx context.Context, groupID string) (*Itinerary, error) {
	return r.findOne(ctx, bson.M{"group_id": groupID})
}

func (r *ItineraryRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*Itinerary, error) {
	var itinerary Itinerary
	err := r.collection.FindOne(ctx, filter).Decode(&itinerary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// Update applies only the fields present in update and refreshes
// updated_at. An unknown id yields (nil, nil), not an error.
func (r *ItineraryRepositoryImpl) Update(ctx context.Context, id string, update *ItineraryUpdate) (*Itinerary, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var itinerary Itinerary
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": update.setFields()}, opts).Decode(&itinerary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *ItineraryRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (u *ItineraryUpdate) setFields() bson.M {
	set := bson.M{}
	if u.GroupName != nil {
		set["group_name"] = *u.GroupName
	}
	if u.Flights != nil {
		set["flights"] = *u.Flights
	}
	if u.Included != nil {
		set["included"] = *u.Included
	}
	if u.NotIncluded != nil {
		set["not_included"] = *u.NotIncluded
	}
	if u.DailySchedule != nil {
		set["daily_schedule"] = *u.DailySchedule
	}
	set["updated_at"] = time.Now().UTC()
	return set
}
