package repository

import (
	"context"
	"errors"
	"time"

	"tonotes/model"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteStore is the document-store contract the notes service relies on.
// Implementations do not filter by owner or deleted flag and return
// FindByOwner results in no particular order.
type NoteStore interface {
	// Upsert writes the whole document keyed by note.ID.
	Upsert(ctx context.Context, note *model.Note) error
	FindByID(ctx context.Context, id string) (*model.Note, error)
	FindByOwner(ctx context.Context, owner string) ([]*model.Note, error)
	// SetDeleted flips the soft-delete flag and stamps updated_at.
	SetDeleted(ctx context.Context, id string, deleted bool, at time.Time) error
	Delete(ctx context.Context, id string) error
}
