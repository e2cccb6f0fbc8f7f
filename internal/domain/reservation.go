package domain

import "time"

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

type Reservation struct {
	ID        int64             `gorm:"primaryKey" json:"id"`
	OfficeID  int64             `gorm:"column:office_id;index" json:"office_id"`
	UserID    int64             `gorm:"column:user_id;index" json:"user_id"`
	Status    ReservationStatus `gorm:"column:status" json:"status"`
	StartDate time.Time         `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time         `gorm:"column:end_date" json:"end_date"`
	CreatedAt time.Time         `json:"created_at"`
}

func (Reservation) TableName() string { return "reservations" }
