package model

// Client is a business-side contact owned by a user account.
type Client struct {
	ID            uint   `gorm:"column:id;primaryKey" json:"id"`
	FirstName     string `gorm:"column:first_name" json:"firstName"`
	LastName      string `gorm:"column:last_name" json:"lastName"`
	Email         string `gorm:"column:email" json:"email"`
	PhoneNumber   string `gorm:"column:phone_number" json:"phoneNumber"`
	UserID        uint   `gorm:"column:user_id" json:"userId"`
	CompanyDataID uint   `gorm:"column:company_data_id" json:"companyDataId"`
}

func (Client) TableName() string {
	return "clients"
}
