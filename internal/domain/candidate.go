package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Canonical enum values. Stored and matched by their display string, not
// by a symbolic name.
const (
	CareerLevelJunior    = "Junior"
	CareerLevelMid       = "Mid Level"
	CareerLevelSenior    = "Senior"
	GenderMale           = "Male"
	GenderFemale         = "Female"
	GenderNotSpecified   = "Not Specified"
	DegreeTypeHighSchool = "High School"
	DegreeTypeBachelor   = "Bachelor"
	DegreeTypeMaster     = "Master"
	DegreeTypeDoctorate  = "Doctorate"
)

type Candidate struct {
	ID                uuid.UUID `json:"uuid"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	CareerLevel       string    `json:"career_level"`
	JobMajor          string    `json:"job_major"`
	YearsOfExperience int       `json:"years_of_experience"`
	DegreeType        string    `json:"degree_type"`
	Skills            []string  `json:"skills"`
	Nationality       string    `json:"nationality"`
	City              string    `json:"city"`
	Salary            float64   `json:"salary"`
	Gender            string    `json:"gender"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreateCandidateInput struct {
	FirstName         string   `json:"first_name" validate:"required,min=2,max=50"`
	LastName          string   `json:"last_name" validate:"required,min=2,max=50"`
	Email             string   `json:"email" validate:"required,email"`
	CareerLevel       string   `json:"career_level" validate:"required,oneof='Junior' 'Senior' 'Mid Level'"`
	JobMajor          string   `json:"job_major" validate:"required,oneof='Computer Science' 'Computer Information Systems' 'Software Engineering' 'Information Technology' 'Data Science' 'Other'"`
	YearsOfExperience *int     `json:"years_of_experience" validate:"required,min=0"`
	DegreeType        string   `json:"degree_type" validate:"required,oneof='High School' 'Bachelor' 'Master' 'Doctorate'"`
	Skills            []string `json:"skills" validate:"required,min=1"`
	Nationality       string   `json:"nationality" validate:"required,oneof='United States' 'Canada' 'United Kingdom' 'France' 'Germany' 'Japan' 'China' 'Jordan'"`
	City              string   `json:"city" validate:"required,min=2,max=100"`
	Salary            *float64 `json:"salary" validate:"required,min=0"`
	Gender            string   `json:"gender" validate:"required,oneof='Male' 'Female' 'Not Specified'"`
}

// UpdateCandidateInput carries a partial update; nil fields are left
// untouched in the store.
type UpdateCandidateInput struct {
	FirstName         *string  `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName          *string  `json:"last_name" validate:"omitempty,min=2,max=50"`
	Email             *string  `json:"email" validate:"omitempty,email"`
	CareerLevel       *string  `json:"career_level" validate:"omitempty,oneof='Junior' 'Senior' 'Mid Level'"`
	JobMajor          *string  `json:"job_major" validate:"omitempty,oneof='Computer Science' 'Computer Information Systems' 'Software Engineering' 'Information Technology' 'Data Science' 'Other'"`
	YearsOfExperience *int     `json:"years_of_experience" validate:"omitempty,min=0"`
	DegreeType        *string  `json:"degree_type" validate:"omitempty,oneof='High School' 'Bachelor' 'Master' 'Doctorate'"`
	Skills            []string `json:"skills" validate:"omitempty,min=1"`
	Nationality       *string  `json:"nationality" validate:"omitempty,oneof='United States' 'Canada' 'United Kingdom' 'France' 'Germany' 'Japan' 'China' 'Jordan'"`
	City              *string  `json:"city" validate:"omitempty,min=2,max=100"`
	Salary            *float64 `json:"salary" validate:"omitempty,min=0"`
	Gender            *string  `json:"gender" validate:"omitempty,oneof='Male' 'Female' 'Not Specified'"`
}

// CandidateFilter holds the optional search parameters. Pointer fields
// distinguish "absent" from a legitimate zero value, so searching for
// zero years of experience or a zero salary works.
type CandidateFilter struct {
	FirstName         *string
	LastName          *string
	Email             *string
	CareerLevel       *string
	JobMajor          *string
	YearsOfExperience *int
	DegreeType        *string
	Skill             *string
	Nationality       *string
	City              *string
	Salary            *float64
	Gender            *string
	// Keyword matches case-insensitively against every candidate field
	// and is combined with AND against the concrete filters above.
	Keyword *string
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCandidateInput) (*Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
}

type CandidateUsecase interface {
	Create(ctx context.Context, input CreateCandidateInput) (*Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCandidateInput) (*Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	GenerateReport(ctx context.Context) ([]byte, error)
}
