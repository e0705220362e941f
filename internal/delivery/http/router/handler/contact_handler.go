package handler

import (
	"net/http"
	"strconv"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/delivery/http/response"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ListContactsQuery holds the filters of GET /api/contacts.
type ListContactsQuery struct {
	FirstName string `query:"first_name"`
	LastName  string `query:"last_name"`
	Email     string `query:"email"`
	Skip      int    `query:"skip" validate:"min=0"`
	Limit     int    `query:"limit" validate:"min=0"`
}

// BirthdaysQuery holds the look-ahead of GET /api/contacts/birthdays.
type BirthdaysQuery struct {
	Days int `query:"days" validate:"min=1,max=366"`
}

// ContactHandler serves the address book of the authenticated user.
type ContactHandler struct {
	uc                  usecase.ContactUsecase
	defaultBirthdayDays int
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, cfg *config.Config) *ContactHandler {
	return &ContactHandler{
		uc:                  uc,
		defaultBirthdayDays: cfg.Contacts.DefaultBirthdayDays,
	}
}

// List returns the owner's contacts matching the optional filters.
func (h *ContactHandler) List(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var query ListContactsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid contact filters")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	contacts, err := h.uc.List(c.Request().Context(), user.ID, entity.ContactFilter{
		FirstName: query.FirstName,
		LastName:  query.LastName,
		Email:     query.Email,
		Skip:      query.Skip,
		Limit:     query.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponses(contacts), "")
}

// UpcomingBirthdays returns contacts whose birthday falls within the requested days.
func (h *ContactHandler) UpcomingBirthdays(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	query := BirthdaysQuery{Days: h.defaultBirthdayDays}
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid days parameter")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	contacts, err := h.uc.UpcomingBirthdays(c.Request().Context(), user.ID, query.Days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponses(contacts), "")
}

// Get returns one contact.
func (h *ContactHandler) Get(c echo.Context) error {
	user, id, err := h.target(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact), "")
}

// Create adds a contact to the owner's address book.
func (h *ContactHandler) Create(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	input, err := bindContact(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContactResponse(contact), "Contact created")
}

// Update replaces every writable field of a contact.
func (h *ContactHandler) Update(c echo.Context) error {
	user, id, err := h.target(c)
	if err != nil {
		return err
	}

	input, err := bindContact(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.Update(c.Request().Context(), user.ID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact), "Contact updated")
}

// Delete removes a contact and returns it.
func (h *ContactHandler) Delete(c echo.Context) error {
	user, id, err := h.target(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.Delete(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact), "Contact deleted")
}

// QRCode renders the contact's vCard as a PNG image.
func (h *ContactHandler) QRCode(c echo.Context) error {
	user, id, err := h.target(c)
	if err != nil {
		return err
	}

	png, err := h.uc.QRCode(c.Request().Context(), user.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// target returns the current user and the contact ID from the path.
func (h *ContactHandler) target(c echo.Context) (*entity.User, int64, error) {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return nil, 0, domainerrors.ErrInvalidToken
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return nil, 0, domainerrors.ErrValidationFailed.WithDetails("id: must be a positive integer")
	}

	return user, id, nil
}

func bindContact(c echo.Context) (*usecase.ContactInput, error) {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid contact body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	input, err := req.toInput()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("birth_date: must be YYYY-MM-DD")
	}

	return input, nil
}
