package gorm

import (
	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// Ensure CompanyStore implements store.CompanyStore
var _ store.CompanyStore = (*CompanyStore)(nil)

// CompanyStore implements store.CompanyStore using GORM
type CompanyStore struct {
	db *gorm.DB
}

// NewCompanyStore creates a new CompanyStore
func NewCompanyStore(db *gorm.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

// CreateCompanyData inserts a new company profile
func (s *CompanyStore) CreateCompanyData(data *model.CompanyData) error {
	return translateError(s.db.Create(data).Error)
}

// ListCompanyData returns every company profile
func (s *CompanyStore) ListCompanyData() ([]model.CompanyData, error) {
	var records []model.CompanyData
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FetchCompanyData retrieves one company profile
func (s *CompanyStore) FetchCompanyData(id uint) (*model.CompanyData, error) {
	var data model.CompanyData
	tx := s.db.First(&data, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &data, nil
}

// UpdateCompanyData updates the profile's fields
func (s *CompanyStore) UpdateCompanyData(data *model.CompanyData) error {
	result := s.db.Model(&model.CompanyData{}).Where("id = ?", data.ID).Updates(map[string]interface{}{
		"company_name":       data.CompanyName,
		"industry":           data.Industry,
		"website":            data.Website,
		"size":               data.Size,
		"street":             data.Street,
		"city":               data.City,
		"zip_code":           data.ZipCode,
		"state":              data.State,
		"country":            data.Country,
		"founded_year":       data.FoundedYear,
		"revenue":            data.Revenue,
		"description":        data.Description,
		"budget":             data.Budget,
		"target_audience":    data.TargetAudience,
		"services":           data.Services,
		"marketing_channels": data.MarketingChannels,
		"competitors":        data.Competitors,
	})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteCompanyData removes a company profile
func (s *CompanyStore) DeleteCompanyData(id uint) error {
	result := s.db.Delete(&model.CompanyData{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
