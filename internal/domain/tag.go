package domain

type Tag struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;uniqueIndex" json:"name"`
}

func (Tag) TableName() string { return "tags" }
