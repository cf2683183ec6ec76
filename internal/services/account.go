package services

import (
	"errors"
	"strings"

	"grove/internal/models"
	"grove/internal/utils"

	"gorm.io/gorm"
)

// AccountService is the identity collaborator: it registers users and checks
// credentials. Everything else in the system only ever sees a resolved user
// passed in explicitly.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Register creates a user with a bcrypt-hashed password.
func (s *AccountService) Register(username, email, password string) (*models.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "Username must not be empty"
	}
	if !strings.Contains(email, "@") {
		fields["email"] = "Enter a valid email address"
	}
	if len(password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fieldError("username", "Username or email is already taken")
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate returns the user matching username and password, or
// ErrInvalidLogin without revealing which part was wrong.
func (s *AccountService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidLogin
	}

	return &user, nil
}
