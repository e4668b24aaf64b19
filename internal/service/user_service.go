package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/auth"
	"github.com/max-shi/game-api-server/internal/dto"
	"github.com/max-shi/game-api-server/internal/models"
	"github.com/max-shi/game-api-server/internal/repository"
)

var (
	ErrEmailInUse             = errors.New("email already in use")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrWrongCurrentPassword   = errors.New("current password is incorrect")
	ErrSamePassword           = errors.New("new password must differ from the current password")
	ErrMissingCurrentPassword = errors.New("current password required to change password")
)

type UserService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, user *models.User) error
	GetByToken(ctx context.Context, token string) (*models.User, error)
	ViewProfile(ctx context.Context, targetID int64, requesterID *int64) (*dto.UserResponse, error)
	Update(ctx context.Context, targetID int64, req dto.UpdateUserRequest) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new account with a uniqueness-checked email and a
// bcrypt-hashed password.
func (s *userService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and persists a fresh opaque token on the user row.
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// User not found: dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return nil, "", ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := auth.NewToken()
	user.AuthToken = &token
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout nulls the stored token; subsequent requests with the old token fail.
func (s *userService) Logout(ctx context.Context, user *models.User) error {
	user.AuthToken = nil
	return s.userRepo.Update(ctx, user)
}

func (s *userService) GetByToken(ctx context.Context, token string) (*models.User, error) {
	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// ViewProfile returns the full profile to the user themself and name-only to
// anyone else.
func (s *userService) ViewProfile(ctx context.Context, targetID int64, requesterID *int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	resp := &dto.UserResponse{Name: user.Name}
	if requesterID != nil && *requesterID == user.ID {
		resp.Email = user.Email
	}
	return resp, nil
}

// Update applies the optional profile changes. A password change requires the
// correct current password and a differing new one; an email change re-checks
// uniqueness.
func (s *userService) Update(ctx context.Context, targetID int64, req dto.UpdateUserRequest) error {
	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(ctx, *req.Email); err == nil {
			return ErrEmailInUse
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user.Email = *req.Email
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Password != nil {
		if req.CurrentPassword == nil {
			return ErrMissingCurrentPassword
		}
		if err := auth.VerifyPassword(user.Password, *req.CurrentPassword); err != nil {
			return ErrWrongCurrentPassword
		}
		if *req.Password == *req.CurrentPassword {
			return ErrSamePassword
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	return s.userRepo.Update(ctx, user)
}
