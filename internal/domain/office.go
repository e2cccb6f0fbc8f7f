package domain

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Office is a coworking space listing. Only approved, non-hidden offices
// are visible on the public listing.
type Office struct {
	ID              int64          `gorm:"primaryKey" json:"id"`
	UserID          int64          `gorm:"column:user_id;index" json:"user_id"`
	Title           string         `gorm:"column:title" json:"title"`
	Description     string         `gorm:"column:description" json:"description"`
	Lat             float64        `gorm:"column:lat" json:"lat"`
	Lng             float64        `gorm:"column:lng" json:"lng"`
	AddressLine1    string         `gorm:"column:address_line1" json:"address_line1"`
	PricePerDay     int            `gorm:"column:price_per_day" json:"price_per_day"`
	MonthlyDiscount int            `gorm:"column:monthly_discount" json:"monthly_discount"`
	Hidden          bool           `gorm:"column:hidden" json:"hidden"`
	ApprovalStatus  ApprovalStatus `gorm:"column:approval_status;index" json:"approval_status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	// Populated from an aggregate select on list/show; null otherwise.
	ReservationsCount *int64 `gorm:"->;-:migration" json:"reservations_count"`

	Tags   []Tag   `gorm:"many2many:office_tag" json:"tags"`
	Images []Image `gorm:"foreignKey:OfficeID" json:"images"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Office) TableName() string { return "offices" }
