package entity

import "time"

// Contact is a person in a user's address book. Email and phone number are unique per owner.
type Contact struct {
	ID          int64
	UserID      int64 // Owner.
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Birthday    time.Time // Only the date part is meaningful.
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContactFilter narrows a contact listing. Empty strings match everything.
type ContactFilter struct {
	FirstName string
	LastName  string
	Email     string
	Skip      int
	Limit     int
}

// MonthDay is a calendar day without a year, used to match birthdays.
type MonthDay struct {
	Month time.Month
	Day   int
}
