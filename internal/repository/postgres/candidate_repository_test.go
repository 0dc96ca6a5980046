package postgres

import (
	"context"
	"testing"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candidateColumnNames = []string{
	"id", "first_name", "last_name", "email", "career_level", "job_major",
	"years_of_experience", "degree_type", "skills", "nationality", "city",
	"salary", "gender", "created_at", "updated_at",
}

func TestCandidateFindAllNoFilterIsFullScan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// No WHERE clause at all when nothing is set
	mock.ExpectQuery(`SELECT (.+) FROM candidates ORDER BY created_at`).
		WillReturnRows(pgxmock.NewRows(candidateColumnNames))

	repo := NewCandidateRepository(mock)
	candidates, err := repo.FindAll(context.Background(), domain.CandidateFilter{})
	require.NoError(t, err)

	// Empty list, not nil, when nothing matches
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateFindAllKeyword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	keyword := "engineer"
	mock.ExpectQuery(`SELECT (.+) FROM candidates WHERE \(first_name ILIKE \$1 OR (.+)\) ORDER BY created_at`).
		WithArgs("%engineer%").
		WillReturnRows(pgxmock.NewRows(candidateColumnNames))

	repo := NewCandidateRepository(mock)
	_, err = repo.FindAll(context.Background(), domain.CandidateFilter{Keyword: &keyword})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateFindAllExactAndKeyword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	city := "Amman"
	years := 0
	keyword := "go"
	mock.ExpectQuery(`SELECT (.+) FROM candidates WHERE years_of_experience = \$1 AND city = \$2 AND \((.+)\) ORDER BY created_at`).
		WithArgs(0, "Amman", "%go%").
		WillReturnRows(pgxmock.NewRows(candidateColumnNames))

	repo := NewCandidateRepository(mock)
	_, err = repo.FindAll(context.Background(), domain.CandidateFilter{
		YearsOfExperience: &years,
		City:              &city,
		Keyword:           &keyword,
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateDeleteNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM candidates WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewCandidateRepository(mock)
	err = repo.Delete(context.Background(), id)

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM candidates WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewCandidateRepository(mock)
	require.NoError(t, repo.Delete(context.Background(), id))

	assert.NoError(t, mock.ExpectationsWereMet())
}
