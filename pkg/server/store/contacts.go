package store

import "github.com/atelier-web/atelier/pkg/model"

// ContactsStore abstracts contact message storage.
type ContactsStore interface {
	CreateContact(contact *model.Contact) error
	ListContacts() ([]model.Contact, error)
	FetchContact(id uint) (*model.Contact, error)
	UpdateContact(contact *model.Contact) error
	DeleteContact(id uint) error
}
