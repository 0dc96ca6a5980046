package postgres

import (
	"context"
	"testing"
	"time"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "first_name", "last_name", "email", "hashed_password", "created_at", "updated_at"}

func TestUserGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows(userColumns).
		AddRow(id, "Jane", "Doe", "a@b.com", "$2a$10$digest", now, now)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("a@b.com").
		WillReturnRows(rows)

	repo := NewUserRepository(mock)
	user, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "$2a$10$digest", user.HashedPassword)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmailAbsent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("missing@x.com").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	user, err := repo.GetByEmail(context.Background(), "missing@x.com")

	// Absent is not an error
	require.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateUniqueViolation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	repo := NewUserRepository(mock)
	now := time.Now()
	err = repo.Create(context.Background(), &domain.User{
		ID: uuid.New(), FirstName: "Jane", LastName: "Doe", Email: "a@b.com",
		HashedPassword: "$2a$10$digest", CreatedAt: now, UpdatedAt: now,
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
