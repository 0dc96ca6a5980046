package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"uuid"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateUserInput is the registration payload. The plaintext password is
// hashed before it reaches the repository and is never stored.
type CreateUserInput struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50,valid_name"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50,valid_name"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type UserUsecase interface {
	Create(ctx context.Context, input CreateUserInput) (*User, error)
}

type AuthUsecase interface {
	// Authenticate checks email+password; absent user and wrong password
	// are indistinguishable to the caller.
	Authenticate(ctx context.Context, email, password string) (*User, error)
	// Login authenticates and issues a bearer token for the user's email.
	Login(ctx context.Context, email, password string) (string, error)
	// GetCurrentUser resolves a validated token subject back to a user.
	GetCurrentUser(ctx context.Context, email string) (*User, error)
}
