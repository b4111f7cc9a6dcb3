package gorm

import (
	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser inserts a new account
func (s *UsersStore) CreateUser(user *model.User) error {
	return translateError(s.db.Create(user).Error)
}

// FindUserByEmail retrieves an account by email
func (s *UsersStore) FindUserByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", email).First(&user)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &user, nil
}

// FindUserByID retrieves an account by id
func (s *UsersStore) FindUserByID(id uint) (*model.User, error) {
	var user model.User
	tx := s.db.First(&user, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &user, nil
}

// UpdateUserProfile updates the mutable profile fields
func (s *UsersStore) UpdateUserProfile(id uint, firstName, lastName, email string) (*model.User, error) {
	tx := s.db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
	})
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.FindUserByID(id)
}
