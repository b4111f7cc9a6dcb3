package store

import "github.com/atelier-web/atelier/pkg/model"

// CompanyStore abstracts company profile storage.
type CompanyStore interface {
	CreateCompanyData(data *model.CompanyData) error
	ListCompanyData() ([]model.CompanyData, error)
	FetchCompanyData(id uint) (*model.CompanyData, error)
	UpdateCompanyData(data *model.CompanyData) error
	DeleteCompanyData(id uint) error
}
