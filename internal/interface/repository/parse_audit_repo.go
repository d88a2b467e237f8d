package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pnr-parser-service/internal/domain/entity"
	"pnr-parser-service/internal/domain/repository"
)

// MongoParseAuditRepository implements ParseAuditRepository
type MongoParseAuditRepository struct {
	collection *mongo.Collection
}

// NewMongoParseAuditRepository creates a parse audit repository and makes
// sure its indexes exist
func NewMongoParseAuditRepository(ctx context.Context, db *mongo.Database, collectionName string) (repository.ParseAuditRepository, error) {
	collection := db.Collection(collectionName)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"createdAt": -1}},
		{Keys: bson.D{
			{Key: "outcome", Value: 1},
			{Key: "createdAt", Value: 1},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("create parse audit indexes: %w", err)
	}

	return &MongoParseAuditRepository{
		collection: collection,
	}, nil
}

// Save inserts a parse audit, assigning ID and CreatedAt when unset
func (r *MongoParseAuditRepository) Save(ctx context.Context, audit *entity.ParseAudit) error {
	if audit.ID == "" {
		audit.ID = uuid.NewString()
	}
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, audit); err != nil {
		return fmt.Errorf("insert parse audit: %w", err)
	}
	return nil
}

// CountByOutcome counts audits created at or after since, grouped by outcome
func (r *MongoParseAuditRepository) CountByOutcome(ctx context.Context, since time.Time) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{"_id": "$outcome", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate parse audits: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Outcome string `bson:"_id"`
			Count   int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode parse audit count: %w", err)
		}
		counts[row.Outcome] = row.Count
	}
	return counts, cursor.Err()
}

// NoopParseAuditRepository discards audits. Used when no MongoDB is configured.
type NoopParseAuditRepository struct{}

// NewNoopParseAuditRepository creates a repository that stores nothing
func NewNoopParseAuditRepository() repository.ParseAuditRepository {
	return NoopParseAuditRepository{}
}

func (NoopParseAuditRepository) Save(context.Context, *entity.ParseAudit) error { return nil }

func (NoopParseAuditRepository) CountByOutcome(context.Context, time.Time) (map[string]int64, error) {
	return map[string]int64{}, nil
}
