package destination

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

type DestinationRepository interface {
	Create(ctx context.Context, destination *Destination) error
	FindAll(ctx context.Context) ([]Destination, error)
	FindByID(ctx context.Context, id string) (*Destination, error)
	Update(ctx context.Context, id string, update *DestinationUpdate) (*Destination, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type DestinationRepositoryImpl struct {
	collection *mongo.Collection
}

func NewDestinationRepository(db *database.MongodbDB) DestinationRepository {
	return &DestinationRepositoryImpl{
		collection: db.DB.Collection("destinations"),
	}
}

func (r *DestinationRepositoryImpl) Create(ctx context.Context, destination *Destination) error {
	if destination.ID == "" {
		destination.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	destination.CreatedAt = now
	destination.UpdatedAt = now

	if destination.Facts == nil {
		destination.Facts = []string{}
	}

	_, err := r.collection.InsertOne(ctx, destination)
	return err
}

func (r *DestinationRepositoryImpl) FindAll(ctx context.Context) ([]Destination, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	destinations := []Destination{}
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, err
	}

	return destinations, nil
}

func (r *DestinationRepositoryImpl) FindByID(ctx context.Context, id string) (*Destination, error) {
	var destination Destination
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&destination)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

// Update applies only the fields present in update and refreshes
// updated_at. An unknown id yields (nil, nil), not an error.
func (r *DestinationRepositoryImpl) Update(ctx context.Context, id string, update *DestinationUpdate) (*Destination, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var destination Destination
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": update.setFields()}, opts).Decode(&destination)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *DestinationRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (u *DestinationUpdate) setFields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Country != nil {
		set["country"] = *u.Country
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Facts != nil {
		set["facts"] = *u.Facts
	}
	if u.SpiritualSignificance != nil {
		set["spiritual_significance"] = *u.SpiritualSignificance
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	set["updated_at"] = time.Now().UTC()
	return set
}
