package model

import "time"

// User is a principal that can authenticate against the server.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password" json:"-"`
	FirstName string    `gorm:"column:first_name" json:"firstName"`
	LastName  string    `gorm:"column:last_name" json:"lastName"`
	Role      Role      `gorm:"column:role;type:text" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
