package model

import (
	"time"
)

type Note struct {
	ID        string     `bson:"_id" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	StartDate *time.Time `bson:"start_date" json:"start_date"`
	EndDate   *time.Time `bson:"end_date" json:"end_date"`
	Pinned    bool       `bson:"pinned" json:"pinned"`
	Tags      []string   `bson:"tags" json:"tags"`
	Deleted   bool       `bson:"deleted" json:"deleted"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// NoteInput is the validated payload of a create request.
type NoteInput struct {
	Title     string
	Content   string
	StartDate *time.Time
	EndDate   *time.Time
	Pinned    bool
	Tags      []string
}

// NotePatch carries the fields of an update. A nil field means "not provided";
// there is no way to clear a field through a patch.
type NotePatch struct {
	Title     *string
	Content   *string
	StartDate *time.Time
	EndDate   *time.Time
	Pinned    *bool
	Tags      []string
}

func (p NotePatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Content == nil &&
		p.StartDate == nil &&
		p.EndDate == nil &&
		p.Pinned == nil &&
		p.Tags == nil
}

// ApplyTo merges the provided fields into note. Identity and timestamps are left alone.
func (p NotePatch) ApplyTo(note *Note) {
	if p.Title != nil {
		note.Title = *p.Title
	}
	if p.Content != nil {
		note.Content = *p.Content
	}
	if p.StartDate != nil {
		start := *p.StartDate
		note.StartDate = &start
	}
	if p.EndDate != nil {
		end := *p.EndDate
		note.EndDate = &end
	}
	if p.Pinned != nil {
		note.Pinned = *p.Pinned
	}
	if p.Tags != nil {
		note.Tags = append([]string{}, p.Tags...)
	}
}

// VisibleTo reports whether owner may see the note through get, list and update.
func (n *Note) VisibleTo(owner string) bool {
	return n != nil && n.UserID == owner && !n.Deleted
}
