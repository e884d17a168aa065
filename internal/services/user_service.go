package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rampandiyar/Volunteer/internal/constants"
	"github.com/Rampandiyar/Volunteer/internal/models"
	"github.com/Rampandiyar/Volunteer/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameRequired     = errors.New("username is required")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles signup, login, and profile business logic.
type UserService struct {
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository) *UserService {
	return &UserService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
	}
}

// SignupInput holds the fields collected by the signup form.
type SignupInput struct {
	Username   string
	Email      string
	Password   string
	Phone      string
	Role       string
	Year       string
	Department string
}

// Signup creates a new user. Role defaults to Volunteer when omitted.
func (s *UserService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = constants.DefaultRole
	}

	user := &models.User{
		Username:   username,
		Email:      strings.TrimSpace(input.Email),
		Password:   string(hashedPassword),
		Role:       role,
		Phone:      strings.TrimSpace(input.Phone),
		Year:       input.Year,
		Department: input.Department,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the authenticated user.
func (s *UserService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user row for the volunteer directory and the
// notification recipient picker.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.List()
}

// ProfileInput holds the fields a user may change about themselves. Role
// and password are deliberately absent: they are immutable via profile
// edit.
type ProfileInput struct {
	Username     string
	Email        string
	Phone        string
	Year         string
	Department   string
	Skills       models.SkillList
	Interests    string
	Availability string
}

// UpdateProfile applies the editable profile fields to an existing user.
func (s *UserService) UpdateProfile(id uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user.Username = username
	user.Email = strings.TrimSpace(input.Email)
	user.Phone = strings.TrimSpace(input.Phone)
	user.Year = input.Year
	user.Department = input.Department
	user.Skills = input.Skills
	user.Interests = input.Interests
	user.Availability = input.Availability

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Stats aggregates a volunteer's assignment totals for the dashboard.
func (s *UserService) Stats(id uint) (total, completed, hours int64, err error) {
	if _, err = s.GetUser(id); err != nil {
		return 0, 0, 0, err
	}
	return s.assignmentRepo.StatsForUser(id)
}
