package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotifOfficePendingApproval NotificationType = "office_pending_approval"
)

type Notification struct {
	ID        int64            `gorm:"primaryKey" json:"id"`
	UserID    int64            `gorm:"column:user_id;index" json:"user_id"`
	Type      NotificationType `gorm:"column:type" json:"type"`
	Title     string           `gorm:"column:title" json:"title"`
	Message   string           `gorm:"column:message" json:"message"`
	Data      json.RawMessage  `gorm:"column:data" json:"data,omitempty"`
	IsRead    bool             `gorm:"column:is_read" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
