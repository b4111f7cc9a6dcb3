package model

import "time"

// Article is a markdown post authored by a user. Picture references a
// filename in the uploads store.
type Article struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title" json:"title"`
	Content   string    `gorm:"column:content" json:"content"`
	Picture   string    `gorm:"column:picture" json:"picture"`
	Published bool      `gorm:"column:published" json:"published"`
	UserID    uint      `gorm:"column:user_id" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Tags []Tag `gorm:"many2many:article_tags" json:"tags"`
}

func (Article) TableName() string {
	return "articles"
}
