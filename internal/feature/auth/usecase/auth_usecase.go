package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"taskplanner_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a
	// user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Save persists changes to an existing user.
	Save(ctx context.Context, user *entity.User) error
}

// TokenGenerator abstracts access token issuance.
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// UpdateParams carries the optional fields of a profile update.
// Zero values mean "leave unchanged".
type UpdateParams struct {
	Name        string
	NewEmail    string
	OldPassword string
	NewPassword string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// Signup registers a new user and returns the created user together with a
// signed access token. The password is stored as a bcrypt hash; the
// confirmation password is compared and discarded, never persisted.
func (u *authUsecase) Signup(ctx context.Context, name, email, password, confirmPassword string) (*entity.User, string, error) {
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, "", ErrMissingFields
	}
	if password != confirmPassword {
		return nil, "", ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns the user together with a signed
// access token. A token is issued only when the password matches the
// stored hash.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Update applies a profile update for the authenticated user. Changing the
// password requires the current password; changing the email requires the
// new address to be unused by any other account.
func (u *authUsecase) Update(ctx context.Context, userID uint, p UpdateParams) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.NewEmail != "" && p.NewEmail != user.Email {
		_, err := u.users.FindByEmail(ctx, p.NewEmail)
		if err == nil {
			return nil, ErrEmailAlreadyExists
		}
		if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}

	if p.NewPassword != "" || p.OldPassword != "" {
		if p.OldPassword == "" {
			return nil, ErrOldPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(p.OldPassword)); err != nil {
			return nil, ErrOldPasswordIncorrect
		}
		if p.NewPassword == "" {
			return nil, ErrNewPasswordEmpty
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(p.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if p.Name != "" {
		user.Name = p.Name
	}
	if p.NewEmail != "" {
		user.Email = p.NewEmail
	}

	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves the user with the given ID.
func (u *authUsecase) GetUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
