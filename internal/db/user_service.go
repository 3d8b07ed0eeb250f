package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aldawsari/shopdesk/internal/models"
)

// ErrInvalidCredentials distinguishes a bad email/password from a real
// data-access failure.
var ErrInvalidCredentials = errors.New("invalid email or password")

// CreateUserRequest holds the data needed to create a staff account
type CreateUserRequest struct {
	Email    string
	Name     string
	Role     models.Role
	Password string
}

// CreateUser creates a staff account with a hashed password
func CreateUser(req CreateUserRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("invalid role %q (use admin, manager or employee)", req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
		PasswordHash: string(hash),
	}
	if user.Name == "" {
		// Fall back to the email, same as the original profile enrichment
		user.Name = email
	}

	if err := DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks credentials and returns the matching user
func Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserProfile returns the display name and role for a user ID
func GetUserProfile(userID string) (name string, role models.Role, err error) {
	var user models.User
	if err := DB.Select("name", "role").First(&user, "id = ?", userID).Error; err != nil {
		return "", "", err
	}
	return user.Name, user.Role, nil
}

// GetUsers returns every staff account ordered by name
func GetUsers() ([]models.User, error) {
	var users []models.User
	if err := DB.Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole changes a user's role
func UpdateUserRole(userID string, role models.Role) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q (use admin, manager or employee)", role)
	}

	var user models.User
	if err := DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	user.Role = role
	if err := DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail returns the user with the given email
func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAdmin creates a first admin account when no users exist yet.
// Returns the created user, or nil when the table was not empty.
func EnsureAdmin(email, password string) (*models.User, error) {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	return CreateUser(CreateUserRequest{
		Email:    email,
		Name:     "Admin",
		Role:     models.RoleAdmin,
		Password: password,
	})
}
