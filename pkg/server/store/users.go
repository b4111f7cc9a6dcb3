package store

import "github.com/atelier-web/atelier/pkg/model"

// UsersStore abstracts user account storage.
type UsersStore interface {
	// CreateUser inserts a new account. Returns ErrConflict when the email
	// is already registered.
	CreateUser(user *model.User) error

	// FindUserByEmail retrieves an account by email.
	FindUserByEmail(email string) (*model.User, error)

	// FindUserByID retrieves an account by id.
	FindUserByID(id uint) (*model.User, error)

	// UpdateUserProfile updates the mutable profile fields and returns the
	// updated record.
	UpdateUserProfile(id uint, firstName, lastName, email string) (*model.User, error)
}
