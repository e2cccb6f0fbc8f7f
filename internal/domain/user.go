package domain

import "time"

// Token scopes checked before privileged operations.
const (
	ScopeOfficeCreate = "office.create"
	ScopeOfficeUpdate = "office.update"
)

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"column:name;index" json:"name"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Actor is the authenticated principal behind a request, extracted from the
// token by the auth middleware and passed explicitly into service calls.
type Actor struct {
	UserID int64
	Scopes []string
}

func (a Actor) Can(scope string) bool {
	for _, s := range a.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
