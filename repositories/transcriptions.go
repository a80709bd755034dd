package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogsmith/models"
)

// TranscriptionRepository stores transcription records. The transcription
// payload is write-once: there is deliberately no update operation here.
type TranscriptionRepository struct {
	col *mongo.Collection
}

func NewTranscriptionRepository(db *mongo.Database) *TranscriptionRepository {
	return &TranscriptionRepository{col: db.Collection("audio_transcriptions")}
}

// Create inserts a transcription record and returns its ID hex.
func (r *TranscriptionRepository) Create(ctx context.Context, t *models.AudioTranscription) (string, error) {
	t.CreatedAt = time.Now()

	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	t.ID = oid
	return oid.Hex(), nil
}

// List returns all transcription records, newest first.
func (r *TranscriptionRepository) List(ctx context.Context) ([]models.AudioTranscription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := []models.AudioTranscription{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
