package model

import "github.com/lib/pq"

// CompanyData is the agency-facing profile of a client company.
type CompanyData struct {
	ID                uint           `gorm:"column:id;primaryKey" json:"id"`
	CompanyName       string         `gorm:"column:company_name" json:"companyName"`
	Industry          string         `gorm:"column:industry" json:"industry"`
	Website           string         `gorm:"column:website" json:"website"`
	Size              string         `gorm:"column:size" json:"size"`
	Street            string         `gorm:"column:street" json:"street"`
	City              string         `gorm:"column:city" json:"city"`
	ZipCode           string         `gorm:"column:zip_code" json:"zipCode"`
	State             string         `gorm:"column:state" json:"state"`
	Country           string         `gorm:"column:country" json:"country"`
	FoundedYear       int            `gorm:"column:founded_year" json:"foundedYear"`
	Revenue           string         `gorm:"column:revenue" json:"revenue"`
	Description       string         `gorm:"column:description" json:"description"`
	Budget            string         `gorm:"column:budget" json:"budget"`
	TargetAudience    string         `gorm:"column:target_audience" json:"targetAudience"`
	Services          pq.StringArray `gorm:"column:services;type:text[]" json:"services"`
	MarketingChannels pq.StringArray `gorm:"column:marketing_channels;type:text[]" json:"marketingChannels"`
	Competitors       pq.StringArray `gorm:"column:competitors;type:text[]" json:"competitors"`
}

func (CompanyData) TableName() string {
	return "company_data"
}
