package repository

import (
	"context"
	"errors"
	"time"

	"tonotes/metrics"
	"tonotes/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const NotesCollection = "notes"

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client, database string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(database).Collection(NotesCollection),
	}
}

// Upsert replaces the note document, inserting it when absent
func (r *NotesRepo) Upsert(ctx context.Context, note *model.Note) error {
	defer metrics.TrackDBOperation("upsert", "mongo").ObserveDuration()

	_, err := r.MongoCollection.ReplaceOne(ctx,
		bson.M{"_id": note.ID}, note, options.Replace().SetUpsert(true))
	return err
}

// FindByID retrieves a note regardless of owner or deleted flag
func (r *NotesRepo) FindByID(ctx context.Context, id string) (*model.Note, error) {
	defer metrics.TrackDBOperation("find_one", "mongo").ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// FindByOwner retrieves every note of a user, deleted ones included
func (r *NotesRepo) FindByOwner(ctx context.Context, owner string) ([]*model.Note, error) {
	defer metrics.TrackDBOperation("find", "mongo").ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NotesRepo) SetDeleted(ctx context.Context, id string, deleted bool, at time.Time) error {
	defer metrics.TrackDBOperation("set_deleted", "mongo").ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"deleted":    deleted,
			"updated_at": at,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// Delete physically removes a note
func (r *NotesRepo) Delete(ctx context.Context, id string) error {
	defer metrics.TrackDBOperation("delete", "mongo").ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}
