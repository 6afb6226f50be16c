package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"simplechat/internal/models"
	"simplechat/internal/repository"
)

var (
	ErrUsernameTaken        = errors.New("username already taken")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AccountService handles registration and login. No session or token is
// issued at login; the returned identity is client-held state.
type AccountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{
		userRepo: userRepo,
	}
}

// RegisterInput holds the fields required to create an account.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AccountService) Register(input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the matching user. A missing user
// and a wrong password are distinct failures.
func (s *AccountService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return user, nil
}
