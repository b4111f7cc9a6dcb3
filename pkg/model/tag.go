package model

// Tag is a shared label attached to articles. Names are unique and
// case-sensitive; rows are created lazily on first use and never updated.
type Tag struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;uniqueIndex" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}
