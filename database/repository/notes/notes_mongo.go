package notesRepo

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

// MongoNotesRepo implements NotesRepository using MongoDB.
type MongoNotesRepo struct {
	coll *mongo.Collection
}

// NewMongoNotesRepo creates a new instance of NotesRepository using MongoDB.
func NewMongoNotesRepo() NotesRepository {
	coll := database.Collection("notes")
	repo := &MongoNotesRepo{coll: coll}

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
func (r *MongoNotesRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "timestamp", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a note by its unique ID.
func (r *MongoNotesRepo) GetByID(id string) (access.Record, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to fetch note with id %s: %w", id, err)
	}
	delete(doc, "_id")
	return database.ToRecord(doc), nil
}

// GetByClientID retrieves all notes for a client, newest first.
func (r *MongoNotesRepo) GetByClientID(clientID string) ([]access.Record, error) {
	return r.find(bson.M{"clientId": clientID})
}

// GetAll retrieves all notes, newest first.
func (r *MongoNotesRepo) GetAll() ([]access.Record, error) {
	return r.find(bson.M{})
}

func (r *MongoNotesRepo) find(filter bson.M) ([]access.Record, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}

	records := make([]access.Record, 0, len(docs))
	for _, doc := range docs {
		delete(doc, "_id")
		records = append(records, database.ToRecord(doc))
	}
	return records, nil
}

// Create inserts a new note record.
func (r *MongoNotesRepo) Create(record access.Record) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, bson.M(record)); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}
