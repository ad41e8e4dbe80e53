package user

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	HashedPassword string    `gorm:"not null;column:hashed_password" json:"-"`
	FirstName      string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName       string    `gorm:"not null;column:last_name" json:"last_name"`
	IsActive       bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Public is the projection returned to clients.
type Public struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (u *User) Public() Public {
	if u == nil {
		return Public{}
	}
	return Public{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}
