package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tonotes/metrics"
	"tonotes/model"

	"github.com/redis/go-redis/v9"
)

const maxTxRetries = 3

// RedisNotesRepo keeps each note as a JSON document under note:<id> and
// indexes ids per owner in the set notes:owner:<owner>.
type RedisNotesRepo struct {
	Client *redis.Client
}

func NewRedisNotesRepo(client *redis.Client) *RedisNotesRepo {
	return &RedisNotesRepo{Client: client}
}

func noteKey(id string) string {
	return fmt.Sprintf("note:%s", id)
}

func ownerKey(owner string) string {
	return fmt.Sprintf("notes:owner:%s", owner)
}

func (r *RedisNotesRepo) Upsert(ctx context.Context, note *model.Note) error {
	defer metrics.TrackDBOperation("upsert", "redis").ObserveDuration()

	data, err := json.Marshal(note)
	if err != nil {
		return err
	}
	pipe := r.Client.TxPipeline()
	pipe.Set(ctx, noteKey(note.ID), data, 0)
	pipe.SAdd(ctx, ownerKey(note.UserID), note.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisNotesRepo) FindByID(ctx context.Context, id string) (*model.Note, error) {
	defer metrics.TrackDBOperation("find_one", "redis").ObserveDuration()
	return getNote(ctx, r.Client, id)
}

func getNote(ctx context.Context, c redis.StringCmdable, id string) (*model.Note, error) {
	data, err := c.Get(ctx, noteKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	var note model.Note
	if err := json.Unmarshal(data, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *RedisNotesRepo) FindByOwner(ctx context.Context, owner string) ([]*model.Note, error) {
	defer metrics.TrackDBOperation("find", "redis").ObserveDuration()

	ids, err := r.Client.SMembers(ctx, ownerKey(owner)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Note{}, nil
	}
	pipe := r.Client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, noteKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	notes := make([]*model.Note, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			// stale set member left behind by a hard delete
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var note model.Note
		if err := json.Unmarshal(data, &note); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}
	return notes, nil
}

// SetDeleted rewrites the document inside a WATCH transaction so a concurrent
// Upsert of the same note is not silently overwritten.
func (r *RedisNotesRepo) SetDeleted(ctx context.Context, id string, deleted bool, at time.Time) error {
	defer metrics.TrackDBOperation("set_deleted", "redis").ObserveDuration()

	key := noteKey(id)
	txf := func(tx *redis.Tx) error {
		note, err := getNote(ctx, tx, id)
		if err != nil {
			return err
		}
		note.Deleted = deleted
		note.UpdatedAt = at
		data, err := json.Marshal(note)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = r.Client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

func (r *RedisNotesRepo) Delete(ctx context.Context, id string) error {
	defer metrics.TrackDBOperation("delete", "redis").ObserveDuration()

	note, err := getNote(ctx, r.Client, id)
	if err != nil {
		return err
	}
	pipe := r.Client.TxPipeline()
	pipe.Del(ctx, noteKey(id))
	pipe.SRem(ctx, ownerKey(note.UserID), id)
	_, err = pipe.Exec(ctx)
	return err
}
