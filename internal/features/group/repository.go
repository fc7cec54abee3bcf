package group

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

type GroupRepository interface {
	Create(ctx context.Context, group *PilgrimageGroup) error
	FindAll(ctx context.Context) ([]PilgrimageGroup, error)
	FindByID(ctx context.Context, id string) (*PilgrimageGroup, error)
	Update(ctx context.Context, id string, update *GroupUpdate) (*PilgrimageGroup, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) (bool, error)
	AddPilgrim(ctx context.Context, groupID string, pilgrim PilgrimInfo) error
	RemovePilgrim(ctx context.Context, groupID, pilgrimID string) error
}

type GroupRepositoryImpl struct {
	collection *mongo.Collection
}

func NewGroupRepository(db *database.MongodbDB) GroupRepository {
	return &GroupRepositoryImpl{
		collection: db.DB.Collection("pilgrimage_groups"),
	}
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *PilgrimageGroup) error {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	group.CreatedAt = now
	group.UpdatedAt = now

	if group.Pilgrims == nil {
		group.Pilgrims = []PilgrimInfo{}
	}

	_, err := r.collection.InsertOne(ctx, group)
	return err
}

func (r *GroupRepositoryImpl) FindAll(ctx context.Context) ([]PilgrimageGroup, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := []PilgrimageGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *GroupRepositoryImpl) FindByID(ctx context.Context, id string) (*PilgrimageGroup, error) {
	var group PilgrimageGroup
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Update applies only the fields present in update and refreshes
// updated_at. An unknown id yields (nil, nil), not an error.
func (r *GroupRepositoryImpl) Update(ctx context.Context, id string, update *GroupUpdate) (*PilgrimageGroup, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var group PilgrimageGroup
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": update.setFields()}, opts).Decode(&group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepositoryImpl) UpdateStatus(ctx context.Context, id, status string) error {
	update := bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now().UTC()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	return err
}

func (r *GroupRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *GroupRepositoryImpl) AddPilgrim(ctx context.Context, groupID string, pilgrim PilgrimInfo) error {
	update := bson.M{
		"$push": bson.M{"pilgrims": pilgrim},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": groupID}, update)
	return err
}

// RemovePilgrim is idempotent: pulling an id that is not on the roster
// is a no-op.
func (r *GroupRepositoryImpl) RemovePilgrim(ctx context.Context, groupID, pilgrimID string) error {
	update := bson.M{
		"$pull": bson.M{"pilgrims": bson.M{"id": pilgrimID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": groupID}, update)
	return err
}

func (u *GroupUpdate) setFields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Destination != nil {
		set["destination"] = *u.Destination
	}
	if u.StartDate != nil {
		set["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		set["end_date"] = *u.EndDate
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	set["updated_at"] = time.Now().UTC()
	return set
}
