package gorm

import (
	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// Ensure ContactsStore implements store.ContactsStore
var _ store.ContactsStore = (*ContactsStore)(nil)

// ContactsStore implements store.ContactsStore using GORM
type ContactsStore struct {
	db *gorm.DB
}

// NewContactsStore creates a new ContactsStore
func NewContactsStore(db *gorm.DB) *ContactsStore {
	return &ContactsStore{db: db}
}

// CreateContact inserts a submitted message
func (s *ContactsStore) CreateContact(contact *model.Contact) error {
	return translateError(s.db.Create(contact).Error)
}

// ListContacts returns every contact message, newest first
func (s *ContactsStore) ListContacts() ([]model.Contact, error) {
	var contacts []model.Contact
	if err := s.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FetchContact retrieves one contact message
func (s *ContactsStore) FetchContact(id uint) (*model.Contact, error) {
	var contact model.Contact
	tx := s.db.First(&contact, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &contact, nil
}

// UpdateContact updates the follow-up fields
func (s *ContactsStore) UpdateContact(contact *model.Contact) error {
	result := s.db.Model(&model.Contact{}).Where("id = ?", contact.ID).Updates(map[string]interface{}{
		"name":        contact.Name,
		"email":       contact.Email,
		"phone":       contact.Phone,
		"message":     contact.Message,
		"contacted":   contact.Contacted,
		"admin_notes": contact.AdminNotes,
	})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteContact removes a contact message
func (s *ContactsStore) DeleteContact(id uint) error {
	result := s.db.Delete(&model.Contact{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
