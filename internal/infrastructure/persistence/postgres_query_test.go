package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB returns a GORM handle speaking the Postgres dialect over sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormPostRepository_FindBySlug_Postgres(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormPostRepository(db)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "slug", "title", "tags", "published"}).
		AddRow(id.String(), "hello-go", "Hello Go", `["go","backend"]`, true)

	mock.ExpectQuery(`SELECT \* FROM "blog_posts" WHERE slug = \$1 ORDER BY .* LIMIT .*`).
		WithArgs("hello-go", 1).
		WillReturnRows(rows)

	post, err := repo.FindBySlug(context.Background(), "hello-go")
	require.NoError(t, err)
	assert.Equal(t, id, post.ID)
	assert.Equal(t, []string{"go", "backend"}, post.Tags)
	assert.True(t, post.Published)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_FindPublished_Postgres(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormPostRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "blog_posts" WHERE published = \$1 ORDER BY published_at DESC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}))

	posts, err := repo.FindPublished(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProjectRepository_Delete_Postgres(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormProjectRepository(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
