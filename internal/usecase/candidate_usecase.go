package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) Create(ctx context.Context, input domain.CreateCandidateInput) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := u.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already used.")
	}

	now := time.Now()
	candidate := &domain.Candidate{
		ID:                uuid.New(),
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Email:             input.Email,
		CareerLevel:       input.CareerLevel,
		JobMajor:          input.JobMajor,
		YearsOfExperience: *input.YearsOfExperience,
		DegreeType:        input.DegreeType,
		Skills:            input.Skills,
		Nationality:       input.Nationality,
		City:              input.City,
		Salary:            *input.Salary,
		Gender:            input.Gender,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := u.repo.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) Update(ctx context.Context, id uuid.UUID, input domain.UpdateCandidateInput) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// A changed email must not collide with another candidate
	if input.Email != nil {
		existing, err := u.repo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.Conflict("Email already used.")
		}
	}

	candidate, err := u.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

func (u *candidateUsecase) Search(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	return u.repo.FindAll(ctx, filter)
}

// GenerateReport renders every candidate as a CSV document.
func (u *candidateUsecase) GenerateReport(ctx context.Context) ([]byte, error) {
	candidates, err := u.repo.FindAll(ctx, domain.CandidateFilter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"UUID", "First Name", "Last Name", "Email", "Career Level", "Job Major",
		"Years Of Experience", "Degree Type", "Skills", "Nationality", "City",
		"Salary", "Gender",
	}
	if err := writer.Write(header); err != nil {
		return nil, apperror.Internal(err)
	}

	for _, c := range candidates {
		record := []string{
			c.ID.String(),
			c.FirstName,
			c.LastName,
			c.Email,
			c.CareerLevel,
			c.JobMajor,
			strconv.Itoa(c.YearsOfExperience),
			c.DegreeType,
			strings.Join(c.Skills, "; "),
			c.Nationality,
			c.City,
			strconv.FormatFloat(c.Salary, 'f', -1, 64),
			c.Gender,
		}
		if err := writer.Write(record); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}
