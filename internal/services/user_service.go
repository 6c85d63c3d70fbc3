package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quilljot/quilljot-be/internal/auth"
	"github.com/quilljot/quilljot-be/internal/models"
)

// ErrWrongCredentials covers both unknown email and password mismatch so the
// two cases stay indistinguishable at the boundary.
var ErrWrongCredentials = errors.New("wrong credentials")

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	ListUsers() ([]models.User, error)
	CreateUser(name, email string, age int, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
	AuthenticateUser(email, password string) (models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// ListUsers retrieves every user record, password hash included. The public
// listing exposes the hash; that is the documented wire behavior.
func (s *UserService) ListUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT id, name, email, age, password_hash, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Age, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUserByID retrieves a single user by their ID, without the password hash.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, age, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Age, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with ID %s not found", id)
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser creates a new user, hashing their password. No uniqueness check
// is performed on the email; registering the same address twice produces two
// records.
func (s *UserService) CreateUser(name, email string, age int, password string) (models.User, error) {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Age:          age,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, name, email, age, password_hash, created_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Name, user.Email, user.Age, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies credentials against the earliest user registered
// with the given email. Unknown email and wrong password both yield
// ErrWrongCredentials.
func (s *UserService) AuthenticateUser(email, password string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow(
		"SELECT id, name, email, age, password_hash, created_at FROM users WHERE email = ? ORDER BY created_at LIMIT 1",
		email,
	)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Age, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrWrongCredentials
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, ErrWrongCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}
