package store

import "github.com/atelier-web/atelier/pkg/model"

// ClientsStore abstracts client storage.
type ClientsStore interface {
	CreateClient(client *model.Client) error
	ListClients() ([]model.Client, error)
	FetchClient(id uint) (*model.Client, error)

	// FetchClientByUser returns the client record owned by a user account,
	// used by the signed-in client's /me endpoint.
	FetchClientByUser(userID uint) (*model.Client, error)

	UpdateClient(client *model.Client) error
	DeleteClient(id uint) error
}
