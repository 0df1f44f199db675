package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agri-advice/internal/domain/entities"
)

const (
	historyCollection = "advice_history"
	profileCollection = "farm_profiles"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// HistoryMongoRepository stores AdviceHistory documents, one per interaction.
type HistoryMongoRepository struct {
	db *mongo.Database
}

func NewHistoryMongoRepository(db *mongo.Database) *HistoryMongoRepository {
	return &HistoryMongoRepository{db: db}
}

func (r *HistoryMongoRepository) Insert(ctx context.Context, entry entities.AdviceHistory) error {
	collection := r.db.Collection(historyCollection)
	_, err := collection.InsertOne(ctx, entry)
	return err
}

// ListByUser returns one page of the user's entries, newest first, plus the
// total count of that user's entries.
func (r *HistoryMongoRepository) ListByUser(ctx context.Context, userID string, offset, limit int64) ([]entities.AdviceHistory, int64, error) {
	collection := r.db.Collection(historyCollection)
	filter := bson.M{"user_id": userID}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "queried_at", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	entries := []entities.AdviceHistory{}
	for cursor.Next(ctx) {
		var entry entities.AdviceHistory
		if err := cursor.Decode(&entry); err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	return entries, total, cursor.Err()
}

// DeleteOwned removes the entry only when it belongs to userID. The filter
// carries both keys so a foreign or missing id looks the same to the caller.
func (r *HistoryMongoRepository) DeleteOwned(ctx context.Context, userID, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	collection := r.db.Collection(historyCollection)
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// ProfileMongoRepository stores one FarmProfile document per user.
type ProfileMongoRepository struct {
	db *mongo.Database
}

func NewProfileMongoRepository(db *mongo.Database) *ProfileMongoRepository {
	return &ProfileMongoRepository{db: db}
}

func (r *ProfileMongoRepository) FindByUserID(ctx context.Context, userID string) (entities.FarmProfile, error) {
	var profile entities.FarmProfile
	collection := r.db.Collection(profileCollection)
	err := collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.FarmProfile{}, ErrNotFound
	}
	return profile, err
}

func (r *ProfileMongoRepository) Upsert(ctx context.Context, profile entities.FarmProfile) (entities.FarmProfile, error) {
	collection := r.db.Collection(profileCollection)
	filter := bson.M{"user_id": profile.UserID}
	update := bson.M{"$set": profile}

	_, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return profile, err
}
