package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"tonotes/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runNoteStoreContract exercises the behaviour every NoteStore must share.
func runNoteStoreContract(t *testing.T, store NoteStore) {
	ctx := context.Background()
	owner := uuid.New().String()
	other := uuid.New().String()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    owner,
		Title:     "Groceries",
		Content:   "milk, eggs",
		StartDate: &start,
		Pinned:    true,
		Tags:      []string{"home"},
		CreatedAt: created,
		UpdatedAt: created,
	}
	foreign := &model.Note{
		ID:        uuid.New().String(),
		UserID:    other,
		Title:     "Other",
		Content:   "not mine",
		CreatedAt: created,
		UpdatedAt: created,
	}

	t.Run("UpsertAndFind", func(t *testing.T) {
		require.NoError(t, store.Upsert(ctx, note))
		require.NoError(t, store.Upsert(ctx, foreign))

		got, err := store.FindByID(ctx, note.ID)
		require.NoError(t, err)
		assert.Equal(t, note.Title, got.Title)
		assert.Equal(t, owner, got.UserID)
		assert.Equal(t, []string{"home"}, got.Tags)
		require.NotNil(t, got.StartDate)
		assert.True(t, start.Equal(*got.StartDate))
		assert.Nil(t, got.EndDate)
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("UpsertReplaces", func(t *testing.T) {
		updated := *note
		updated.Title = "Groceries (weekly)"
		require.NoError(t, store.Upsert(ctx, &updated))

		got, err := store.FindByID(ctx, note.ID)
		require.NoError(t, err)
		assert.Equal(t, "Groceries (weekly)", got.Title)
	})

	t.Run("FindByOwner", func(t *testing.T) {
		notes, err := store.FindByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, note.ID, notes[0].ID)

		none, err := store.FindByOwner(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("SetDeleted", func(t *testing.T) {
		at := created.Add(time.Hour)
		require.NoError(t, store.SetDeleted(ctx, note.ID, true, at))

		got, err := store.FindByID(ctx, note.ID)
		require.NoError(t, err)
		assert.True(t, got.Deleted)
		assert.True(t, at.Equal(got.UpdatedAt))

		notes, err := store.FindByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, notes, 1, "the store itself does not filter deleted notes")

		err = store.SetDeleted(ctx, uuid.New().String(), true, at)
		assert.True(t, errors.Is(err, ErrNoteNotFound))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, note.ID))

		_, err := store.FindByID(ctx, note.ID)
		assert.True(t, errors.Is(err, ErrNoteNotFound))

		notes, err := store.FindByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, notes)

		assert.True(t, errors.Is(store.Delete(ctx, note.ID), ErrNoteNotFound))
		require.NoError(t, store.Delete(ctx, foreign.ID))
	})
}
