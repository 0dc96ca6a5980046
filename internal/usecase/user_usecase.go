package usecase

import (
	"context"
	"time"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type userUsecase struct {
	userRepo domain.UserRepository
	hasher   *auth.PasswordHasher
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, hasher *auth.PasswordHasher, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		validate: validate,
	}
}

func (u *userUsecase) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Pre-check for the friendlier error; the UNIQUE constraint on email
	// catches the race between two concurrent registrations.
	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already registered.")
	}

	hashed, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:             uuid.New(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		HashedPassword: hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
