package clientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caredesk/database"
	"caredesk/services/access"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new instance of ClientRepository using MongoDB.
func NewMongoClientRepo() ClientRepository {
	coll := database.Collection("clients")
	repo := &MongoClientRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoClientRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a client record by its unique ID.
func (r *MongoClientRepo) GetByID(id string) (access.Record, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}
	delete(doc, "_id")
	return database.ToRecord(doc), nil
}

// GetAll retrieves all client records.
func (r *MongoClientRepo) GetAll() ([]access.Record, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}

	records := make([]access.Record, 0, len(docs))
	for _, doc := range docs {
		delete(doc, "_id")
		records = append(records, database.ToRecord(doc))
	}
	return records, nil
}

// Create inserts a new client record.
func (r *MongoClientRepo) Create(record access.Record) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, bson.M(record)); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// Update replaces an existing client record.
func (r *MongoClientRepo) Update(id string, record access.Record) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, bson.M(record))
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}
