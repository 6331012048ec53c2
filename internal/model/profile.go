package model

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// Profile mirrors a staff identity (admin or seller/operator). Accounts
// live in Firebase; this table only carries the display attributes the
// dashboard needs and the role used for authorization.
type Profile struct {
	ID        string    `gorm:"primaryKey;size:128"`
	Name      string    `gorm:"size:120;not null"`
	Email     string    `gorm:"size:255;uniqueIndex"`
	Color     string    `gorm:"size:16"`
	Role      Role      `gorm:"size:16;not null;default:operator"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
