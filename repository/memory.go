package repository

import (
	"context"
	"sync"
	"time"

	"tonotes/model"
)

// MemoryNotesRepo is an in-process NoteStore used by tests and local runs.
// Notes are copied on the way in and out so callers never share state with it.
type MemoryNotesRepo struct {
	mu    sync.RWMutex
	notes map[string]*model.Note
	order []string
	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryNotesRepo() *MemoryNotesRepo {
	return &MemoryNotesRepo{notes: make(map[string]*model.Note)}
}

func cloneNote(n *model.Note) *model.Note {
	c := *n
	if n.Tags != nil {
		c.Tags = append([]string{}, n.Tags...)
	}
	if n.StartDate != nil {
		s := *n.StartDate
		c.StartDate = &s
	}
	if n.EndDate != nil {
		e := *n.EndDate
		c.EndDate = &e
	}
	return &c
}

func (r *MemoryNotesRepo) Upsert(_ context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.notes[note.ID]; !ok {
		r.order = append(r.order, note.ID)
	}
	r.notes[note.ID] = cloneNote(note)
	return nil
}

func (r *MemoryNotesRepo) FindByID(_ context.Context, id string) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	note, ok := r.notes[id]
	if !ok {
		return nil, ErrNoteNotFound
	}
	return cloneNote(note), nil
}

// FindByOwner returns notes in insertion order.
func (r *MemoryNotesRepo) FindByOwner(_ context.Context, owner string) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []*model.Note{}
	for _, id := range r.order {
		if note, ok := r.notes[id]; ok && note.UserID == owner {
			out = append(out, cloneNote(note))
		}
	}
	return out, nil
}

func (r *MemoryNotesRepo) SetDeleted(_ context.Context, id string, deleted bool, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	note, ok := r.notes[id]
	if !ok {
		return ErrNoteNotFound
	}
	note.Deleted = deleted
	note.UpdatedAt = at
	return nil
}

func (r *MemoryNotesRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.notes[id]; !ok {
		return ErrNoteNotFound
	}
	delete(r.notes, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
