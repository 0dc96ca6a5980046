package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const candidateColumns = `id, first_name, last_name, email, career_level, job_major,
       years_of_experience, degree_type, skills, nationality, city, salary, gender,
       created_at, updated_at`

type candidateRepository struct {
	db DB
}

func NewCandidateRepository(db DB) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (
			id, first_name, last_name, email, career_level, job_major,
			years_of_experience, degree_type, skills, nationality, city, salary, gender,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.FirstName, candidate.LastName, candidate.Email,
		candidate.CareerLevel, candidate.JobMajor, candidate.YearsOfExperience,
		candidate.DegreeType, pq.Array(candidate.Skills), candidate.Nationality,
		candidate.City, candidate.Salary, candidate.Gender,
		candidate.CreatedAt, candidate.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Email already used.")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return scanCandidateRow(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`
	return scanCandidateRow(r.db.QueryRow(ctx, query, email))
}

// Update applies only the fields present in input and returns the
// updated record, or nil if no candidate has this id.
func (r *candidateRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateCandidateInput) (*domain.Candidate, error) {
	sets, args := buildCandidateUpdate(input)
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE candidates SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+candidateColumns,
		strings.Join(sets, ", "), len(args))

	candidate, err := scanCandidateRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("Email already used.")
		}
		return nil, err
	}
	return candidate, nil
}

func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Candidate not found")
	}
	return nil
}

func (r *candidateRepository) FindAll(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	where, args := buildCandidateFilter(filter)
	query := `SELECT ` + candidateColumns + ` FROM candidates` + where + ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Empty slice, not nil: no match means an empty list in responses
	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		var skills []string
		err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CareerLevel, &c.JobMajor,
			&c.YearsOfExperience, &c.DegreeType, pq.Array(&skills), &c.Nationality,
			&c.City, &c.Salary, &c.Gender, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		c.Skills = skills
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func buildCandidateUpdate(input domain.UpdateCandidateInput) ([]string, []any) {
	var sets []string
	var args []any

	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if input.FirstName != nil {
		set("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		set("last_name", *input.LastName)
	}
	if input.Email != nil {
		set("email", *input.Email)
	}
	if input.CareerLevel != nil {
		set("career_level", *input.CareerLevel)
	}
	if input.JobMajor != nil {
		set("job_major", *input.JobMajor)
	}
	if input.YearsOfExperience != nil {
		set("years_of_experience", *input.YearsOfExperience)
	}
	if input.DegreeType != nil {
		set("degree_type", *input.DegreeType)
	}
	if input.Skills != nil {
		set("skills", pq.Array(input.Skills))
	}
	if input.Nationality != nil {
		set("nationality", *input.Nationality)
	}
	if input.City != nil {
		set("city", *input.City)
	}
	if input.Salary != nil {
		set("salary", *input.Salary)
	}
	if input.Gender != nil {
		set("gender", *input.Gender)
	}
	return sets, args
}

func scanCandidateRow(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var skills []string
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CareerLevel, &c.JobMajor,
		&c.YearsOfExperience, &c.DegreeType, pq.Array(&skills), &c.Nationality,
		&c.City, &c.Salary, &c.Gender, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.Skills = skills
	return &c, nil
}
