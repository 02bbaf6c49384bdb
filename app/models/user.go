package models

import "time"

type User struct {
	ID          string        `json:"id" validate:"required,uuid"`
	Email       string        `json:"email" validate:"required,email"`
	Password    string        `json:"-" validate:"required,min=8"`
	FullName    string        `json:"full_name" validate:"required"`
	Phone       *string       `json:"phone,omitempty"`
	Address     *string       `json:"address,omitempty"`
	DateOfBirth *time.Time    `json:"date_of_birth,omitempty"`
	Status      ProfileStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	Role        string        `json:"role,omitempty" validate:"omitempty,oneof=admin teacher student"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty"`
}

// IsStaff reports whether the user may act on other users' records.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleTeacher
}
