package usecase

import (
	"context"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/auth"
)

// Same message whether the email is unknown or the password is wrong, so
// callers cannot probe which factor failed.
const msgBadCredentials = "Incorrect username or password"

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (u *authUsecase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil || !u.hasher.Verify(password, user.HashedPassword) {
		return nil, apperror.Unauthorized(msgBadCredentials)
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, err := u.tokens.Issue(user.Email, 0)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		// Token subject no longer resolves to an account
		return nil, apperror.Unauthorized("Could not validate credentials")
	}
	return user, nil
}
