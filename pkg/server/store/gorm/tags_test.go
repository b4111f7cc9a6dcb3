package gorm

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-web/atelier/pkg/server/store"
)

func TestReconcileTagsUpserts(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTagsStore(db)

	mock.ExpectQuery(`INSERT INTO tags \(name\) VALUES`).
		WithArgs("go").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "go"))
	mock.ExpectQuery(`INSERT INTO tags \(name\) VALUES`).
		WithArgs("web").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "web"))

	// Duplicate and empty labels never reach the database.
	tags, err := s.ReconcileTags([]string{"go", "", "web", "go"})
	require.NoError(t, err)

	require.Len(t, tags, 2)
	assert.Equal(t, uint(1), tags[0].ID)
	assert.Equal(t, "go", tags[0].Name)
	assert.Equal(t, uint(2), tags[1].ID)
	assert.Equal(t, "web", tags[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileTagsEmptyInput(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTagsStore(db)

	tags, err := s.ReconcileTags(nil)
	require.NoError(t, err)
	assert.Empty(t, tags)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTagConflict(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTagsStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tags"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "tags_name_key" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	_, err := s.CreateTag("go")
	assert.ErrorIs(t, err, store.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTag(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTagsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM article_tags WHERE tag_id`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM tags WHERE id`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, s.DeleteTag(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTagNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTagsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM article_tags WHERE tag_id`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM tags WHERE id`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, s.DeleteTag(99), store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTagsByArticle(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewTagsStore(db)

	mock.ExpectQuery(`SELECT tags.id, tags.name FROM tags`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "design").
			AddRow(2, "go"))

	tags, err := s.ListTagsByArticle(3)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "design", tags[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}
