package spiritual

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

type ContentRepository interface {
	Create(ctx context.Context, content *SpiritualContent) error
	FindAll(ctx context.Context) ([]SpiritualContent, error)
	FindByID(ctx context.Context, id string) (*SpiritualContent, error)
	FindByCategory(ctx context.Context, category string) ([]SpiritualContent, error)
	Update(ctx context.Context, id string, update *ContentUpdate) (*SpiritualContent, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ContentRepositoryImpl struct {
	collection *mongo.Collection
}

func NewContentRepository(db *database.MongodbDB) ContentRepository {
	return &ContentRepositoryImpl{
		collection: db.DB.Collection("spiritual_content"),
	}
}

func (r *ContentRepositoryImpl) Create(ctx context.Context, content *SpiritualContent) error {
	if content.ID == "" {
		content.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	content.CreatedAt = now
	content.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, content)
	return err
}

func (r *ContentRepositoryImpl) FindAll(ctx context.Context) ([]SpiritualContent, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *ContentRepositoryImpl) FindByCategory(ctx context.Context, category string) ([]SpiritualContent, error) {
	return r.findMany(ctx, bson.M{"category": category})
}

func (r *ContentRepositoryImpl) findMany(ctx context.Context, filter bson.M) ([]SpiritualContent, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contents := []SpiritualContent{}
	if err := cursor.All(ctx, &contents); err != nil {
		return nil, err
	}

	return contents, nil
}

func (r *ContentRepositoryImpl) FindByID(ctx context.Context, id string) (*SpiritualContent, error) {
	var content SpiritualContent
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&content)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// Update applies only the fields present in update and refreshes
// updated_at. An unknown id yields (nil, nil), not an error.
func (r *ContentRepositoryImpl) Update(ctx context.Context, id string, update *ContentUpdate) (*SpiritualContent, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var content SpiritualContent
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": update.setFields()}, opts).Decode(&content)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *ContentRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (u *ContentUpdate) setFields() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.Content != nil {
		set["content"] = *u.Content
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	set["updated_at"] = time.Now().UTC()
	return set
}
