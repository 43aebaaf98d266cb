package domain

import (
	"context"
	"time"
)

// User represents a registered forum user. A user can register, login,
// open threads, comment, reply and like comments.
type User struct {
	ID       string    // Unique identifier, user-<uuid>
	Username string    // Login username (unique)
	Fullname string    // Display name
	Password string    // Bcrypt hashed password
	Date     time.Time // Account creation timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)

	// Insert creates a new user account.
	Insert(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account and returns its id.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, username, fullname, password string) (string, error)

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, username, password string) (string, error)
}
