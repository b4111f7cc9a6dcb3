package gorm

import (
	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// Ensure ClientsStore implements store.ClientsStore
var _ store.ClientsStore = (*ClientsStore)(nil)

// ClientsStore implements store.ClientsStore using GORM
type ClientsStore struct {
	db *gorm.DB
}

// NewClientsStore creates a new ClientsStore
func NewClientsStore(db *gorm.DB) *ClientsStore {
	return &ClientsStore{db: db}
}

// CreateClient inserts a new client
func (s *ClientsStore) CreateClient(client *model.Client) error {
	return translateError(s.db.Create(client).Error)
}

// ListClients returns every client
func (s *ClientsStore) ListClients() ([]model.Client, error) {
	var clients []model.Client
	if err := s.db.Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// FetchClient retrieves one client
func (s *ClientsStore) FetchClient(id uint) (*model.Client, error) {
	var client model.Client
	tx := s.db.First(&client, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &client, nil
}

// FetchClientByUser retrieves the client owned by a user account
func (s *ClientsStore) FetchClientByUser(userID uint) (*model.Client, error) {
	var client model.Client
	tx := s.db.Where("user_id = ?", userID).First(&client)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &client, nil
}

// UpdateClient updates the client's fields
func (s *ClientsStore) UpdateClient(client *model.Client) error {
	result := s.db.Model(&model.Client{}).Where("id = ?", client.ID).Updates(map[string]interface{}{
		"first_name":      client.FirstName,
		"last_name":       client.LastName,
		"email":           client.Email,
		"phone_number":    client.PhoneNumber,
		"user_id":         client.UserID,
		"company_data_id": client.CompanyDataID,
	})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client
func (s *ClientsStore) DeleteClient(id uint) error {
	result := s.db.Delete(&model.Client{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
