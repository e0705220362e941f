// Package model contains the GORM persistence models.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Username  string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email     string  `gorm:"type:varchar(250);uniqueIndex;not null"`
	Password  string  `gorm:"type:varchar(255);not null"`
	Confirmed bool    `gorm:"not null"`
	Role      string  `gorm:"type:varchar(20);not null"`
	Avatar    *string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
