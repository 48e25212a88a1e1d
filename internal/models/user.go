// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Role identifies what kind of account a user holds. Dashboards and
// protected routes dispatch on this value exhaustively.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleShopOwner Role = "shop_owner"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleShopOwner, RoleAdmin:
		return true
	}
	return false
}

// DispatchRole calls exactly one of the supplied callbacks depending on the
// role. It returns an error for unknown roles instead of silently falling
// through, so a new role cannot be added without updating every caller.
func DispatchRole[T any](r Role, customer, shopOwner, admin func() T) (T, error) {
	switch r {
	case RoleCustomer:
		return customer(), nil
	case RoleShopOwner:
		return shopOwner(), nil
	case RoleAdmin:
		return admin(), nil
	default:
		var zero T
		return zero, fmt.Errorf("unknown role %q", r)
	}
}

// User represents an account on the rental marketplace.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      Role           `gorm:"type:varchar(20);not null;default:customer" json:"role"`
	Phone     string         `json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
