package domain

// Image is a photo attached to an office. Read-only through the API.
type Image struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	OfficeID int64  `gorm:"column:office_id;index" json:"office_id"`
	Path     string `gorm:"column:path" json:"path"`
}

func (Image) TableName() string { return "images" }
