package handler

import (
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/usecase"
)

// dateLayout is the wire format of contact birthdays.
const dateLayout = time.DateOnly

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Confirmed bool      `json:"confirmed"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role.String(),
		Confirmed: user.Confirmed,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}

// ContactRequest is the body of contact create and update calls.
type ContactRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email,max=100"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=20"`
	BirthDate   string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// toInput converts a validated request. BirthDate has already passed the datetime check.
func (r *ContactRequest) toInput() (*usecase.ContactInput, error) {
	birthday, err := time.Parse(dateLayout, r.BirthDate)
	if err != nil {
		return nil, err
	}

	return &usecase.ContactInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Birthday:    birthday,
		Notes:       r.Notes,
	}, nil
}

// ContactResponse is the public view of a contact.
type ContactResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	BirthDate   string    `json:"birth_date"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toContactResponse(contact *entity.Contact) *ContactResponse {
	return &ContactResponse{
		ID:          contact.ID,
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		Email:       contact.Email,
		PhoneNumber: contact.PhoneNumber,
		BirthDate:   contact.Birthday.Format(dateLayout),
		Notes:       contact.Notes,
		CreatedAt:   contact.CreatedAt,
		UpdatedAt:   contact.UpdatedAt,
	}
}

func toContactResponses(contacts []*entity.Contact) []*ContactResponse {
	out := make([]*ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toContactResponse(contact))
	}

	return out
}

// MessageResponse carries the outcome of the email flows.
type MessageResponse struct {
	Message string `json:"message"`
}
