package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"tonotes/metrics"
	"tonotes/model"
	"tonotes/repository"
	"tonotes/utils"

	"github.com/google/uuid"
)

// NotesService owns the note lifecycle. Every operation is scoped to an owner;
// a note owned by someone else behaves exactly like a missing one.
type NotesService struct {
	Store repository.NoteStore
	Clock utils.Clock
}

func NewNotesService(store repository.NoteStore, clock utils.Clock) *NotesService {
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &NotesService{Store: store, Clock: clock}
}

// Mongo keeps millisecond precision; truncating keeps stored and returned values equal.
func (s *NotesService) now() time.Time {
	return s.Clock.Now().UTC().Truncate(time.Millisecond)
}

// touch returns the updated_at of a mutation following prev. It always moves
// forward, by at least one millisecond.
func (s *NotesService) touch(prev time.Time) time.Time {
	now := s.now()
	if next := prev.UTC().Truncate(time.Millisecond).Add(time.Millisecond); now.Before(next) {
		return next
	}
	return now
}

// storeErr maps a repository failure onto the service error taxonomy.
func storeErr(op string, err error) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return utils.ErrNoteNotFound
	}
	log.Printf("note store %s failed: %v", op, err)
	return utils.ErrStorageUnavailable.With(err, "operation", op)
}

func (s *NotesService) CreateNote(ctx context.Context, owner string, input model.NoteInput) (*model.Note, error) {
	now := s.now()
	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    owner,
		Title:     input.Title,
		Content:   input.Content,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Pinned:    input.Pinned,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Upsert(ctx, note); err != nil {
		return nil, storeErr("create", err)
	}
	metrics.TrackNoteOperation("create")
	return note, nil
}

// ListNotes returns the owner's visible notes, pinned first and newest first
// within each group.
func (s *NotesService) ListNotes(ctx context.Context, owner string) ([]*model.Note, error) {
	all, err := s.Store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, storeErr("list", err)
	}
	notes := make([]*model.Note, 0, len(all))
	for _, n := range all {
		if n.VisibleTo(owner) {
			notes = append(notes, n)
		}
	}
	sortNotes(notes)
	return notes, nil
}

func sortNotes(notes []*model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}

func (s *NotesService) GetNote(ctx context.Context, id, owner string) (*model.Note, error) {
	note, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get", err)
	}
	if !note.VisibleTo(owner) {
		return nil, utils.ErrNoteNotFound
	}
	return note, nil
}

// UpdateNote merges the provided fields. Visibility is checked before the
// patch so a missing note always reports not found.
func (s *NotesService) UpdateNote(ctx context.Context, id, owner string, patch model.NotePatch) (*model.Note, error) {
	note, err := s.GetNote(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, utils.ErrNoUpdatableFields
	}
	patch.ApplyTo(note)
	note.UpdatedAt = s.touch(note.UpdatedAt)
	if err := s.Store.Upsert(ctx, note); err != nil {
		return nil, storeErr("update", err)
	}
	metrics.TrackNoteOperation("update")
	return note, nil
}

func (s *NotesService) SoftDeleteNote(ctx context.Context, id, owner string) error {
	note, err := s.GetNote(ctx, id, owner)
	if err != nil {
		return err
	}
	if err := s.Store.SetDeleted(ctx, id, true, s.touch(note.UpdatedAt)); err != nil {
		return storeErr("delete", err)
	}
	metrics.TrackNoteOperation("delete")
	return nil
}

// RestoreNote brings a soft-deleted note back. Active, missing and foreign
// notes all fail the same way.
func (s *NotesService) RestoreNote(ctx context.Context, id, owner string) (*model.Note, error) {
	note, err := s.Store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, utils.ErrRestoreFailed
		}
		return nil, storeErr("restore", err)
	}
	if note.UserID != owner || !note.Deleted {
		return nil, utils.ErrRestoreFailed
	}
	if err := s.Store.SetDeleted(ctx, id, false, s.touch(note.UpdatedAt)); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, utils.ErrRestoreFailed
		}
		return nil, storeErr("restore", err)
	}
	restored, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("restore", err)
	}
	metrics.TrackNoteOperation("restore")
	return restored, nil
}

// HardDeleteNote physically removes an owned note, deleted or not. It is only
// reachable from the operator CLI.
func (s *NotesService) HardDeleteNote(ctx context.Context, id, owner string) error {
	note, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return storeErr("purge", err)
	}
	if note.UserID != owner {
		return utils.ErrNoteNotFound
	}
	if err := s.Store.Delete(ctx, id); err != nil {
		return storeErr("purge", err)
	}
	metrics.TrackNoteOperation("purge")
	return nil
}
