package model

import "time"

// ContactModel mirrors the 'contacts' table. Email and phone number are unique per owner.
type ContactModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index;uniqueIndex:uq_contacts_user_email;uniqueIndex:uq_contacts_user_phone"`
	FirstName   string    `gorm:"type:varchar(50);not null;index"`
	LastName    string    `gorm:"type:varchar(50);not null;index"`
	Email       string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_contacts_user_email"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_contacts_user_phone"`
	Birthday    time.Time `gorm:"type:date;not null"`
	Notes       *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
