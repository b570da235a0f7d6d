package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create persists a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks whether a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update persists changes to an existing user
	Update(ctx context.Context, user *User) error
}
