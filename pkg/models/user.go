package models

type User struct {
	ID           int    `json:"id" db:"id"`
	EmpID        string `json:"emp_id" db:"emp_id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Dept         string `json:"dept" db:"dept"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

type CreateUserRequest struct {
	EmpID    string `json:"emp_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Dept     string `json:"dept"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UserChanges carries the mutable part of a user row; nil means unchanged.
type UserChanges struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Dept     *string `json:"dept"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
