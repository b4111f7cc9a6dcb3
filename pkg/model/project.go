package model

import "time"

// Project is an engagement delivered for a client.
type Project struct {
	ID          uint       `gorm:"column:id;primaryKey" json:"id"`
	Name        string     `gorm:"column:name" json:"name"`
	Description string     `gorm:"column:description" json:"description"`
	Picture     string     `gorm:"column:picture" json:"picture"`
	ClientID    uint       `gorm:"column:client_id" json:"clientId"`
	StartDate   *time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate     *time.Time `gorm:"column:end_date" json:"endDate"`
	Status      string     `gorm:"column:status" json:"status"`
}

func (Project) TableName() string {
	return "projects"
}
