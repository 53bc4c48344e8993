package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotePatchIsEmpty(t *testing.T) {
	title := "t"
	pinned := false
	start := time.Now()

	assert.True(t, NotePatch{}.IsEmpty())
	assert.False(t, NotePatch{Title: &title}.IsEmpty())
	assert.False(t, NotePatch{Pinned: &pinned}.IsEmpty(), "an explicit false is still a value")
	assert.False(t, NotePatch{StartDate: &start}.IsEmpty())
	assert.False(t, NotePatch{Tags: []string{}}.IsEmpty(), "an empty tag list replaces the tags")
}

func TestNotePatchApplyTo(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	note := &Note{
		ID:        "n1",
		UserID:    "u1",
		Title:     "old",
		Content:   "body",
		Tags:      []string{"a"},
		CreatedAt: created,
		UpdatedAt: created,
	}
	title := "new"
	pinned := true
	tags := []string{"x", "y"}

	NotePatch{Title: &title, Pinned: &pinned, Tags: tags}.ApplyTo(note)

	assert.Equal(t, "new", note.Title)
	assert.Equal(t, "body", note.Content, "unset fields are kept")
	assert.True(t, note.Pinned)
	assert.Equal(t, []string{"x", "y"}, note.Tags)
	assert.Equal(t, "n1", note.ID)
	assert.Equal(t, "u1", note.UserID)
	assert.Equal(t, created, note.UpdatedAt, "timestamps belong to the store")

	tags[0] = "mutated"
	assert.Equal(t, "x", note.Tags[0], "tags are copied")
}

func TestNoteVisibleTo(t *testing.T) {
	note := &Note{UserID: "u1"}
	assert.True(t, note.VisibleTo("u1"))
	assert.False(t, note.VisibleTo("u2"))

	note.Deleted = true
	assert.False(t, note.VisibleTo("u1"))

	var missing *Note
	assert.False(t, missing.VisibleTo("u1"))
}

func TestNewAnalysisResultDefaults(t *testing.T) {
	r := NewAnalysisResult("raw")
	assert.Equal(t, DefaultNoteType, r.NoteType)
	assert.Equal(t, DefaultImportanceLevel, r.ImportanceLevel)
	assert.Equal(t, DefaultCategory, r.Category)
	assert.NotNil(t, r.Suggestions)
	assert.Empty(t, r.Suggestions)
	assert.NotNil(t, r.SuggestedTags)
	assert.Equal(t, "raw", r.RawText)
}
