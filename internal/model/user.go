package model

import (
	"time"
)

// User statuses
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents a member of the editorial staff
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Location  string    `json:"location"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCreate represents data needed to create a new user
type UserCreate struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required"`
	Location string `json:"location"`
	Role     string `json:"role" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UserUpdate represents a partial patch for a user.
// Nil fields are left unchanged; id and createdAt are never patchable.
type UserUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Mobile   *string `json:"mobile"`
	Location *string `json:"location"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}
