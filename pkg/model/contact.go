package model

import "time"

// Contact is a message submitted through the public contact form.
// Contacted and AdminNotes are maintained by admins during follow-up.
type Contact struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"id"`
	Name       string    `gorm:"column:name" json:"name"`
	Email      string    `gorm:"column:email" json:"email"`
	Phone      string    `gorm:"column:phone" json:"phone"`
	Message    string    `gorm:"column:message" json:"message"`
	Contacted  bool      `gorm:"column:contacted" json:"contacted"`
	AdminNotes string    `gorm:"column:admin_notes" json:"adminNotes"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Contact) TableName() string {
	return "contacts"
}
