package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleOnboarding Role = "ONBOARDING"
	RoleEmployee   Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleOnboarding, RoleEmployee:
		return true
	}
	return false
}

// User rows store phone as bare digits; formatting happens at the
// response boundary. DeptID is meaningful only for ONBOARDING users,
// supervised tasks only for SUPERVISOR users.
type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string     `gorm:"size:255;not null"`
	Email         string     `gorm:"size:255;not null;uniqueIndex:uq_users_email"`
	Phone         *string    `gorm:"size:20;uniqueIndex:uq_users_phone"`
	Role          Role       `gorm:"type:varchar(20);not null;default:'EMPLOYEE'"`
	DeptID        *uuid.UUID `gorm:"type:uuid;index"`
	EmailVerified bool       `gorm:"not null;default:false"`
	Password      string     `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
