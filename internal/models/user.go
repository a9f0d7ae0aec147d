package models

import "time"

// AdminUsername is reserved and seeded on first boot.
const AdminUsername = "admin"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (User) TableName() string { return "users" }

func (user *User) IsAdmin() bool {
	return user != nil && user.Username == AdminUsername
}

// UserSummary is the projection exposed by the user directory endpoint.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
