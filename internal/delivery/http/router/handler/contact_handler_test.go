package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContact(id int64) *entity.Contact {
	stamp := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	return &entity.Contact{
		ID:          id,
		UserID:      1,
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "123-456-7890",
		Birthday:    time.Date(1990, time.December, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
}

func routeContacts(e *echo.Echo, h *ContactHandler) {
	e.GET("/api/contacts", h.List)
	e.GET("/api/contacts/birthdays", h.UpcomingBirthdays)
	e.GET("/api/contacts/:id", h.Get)
	e.GET("/api/contacts/:id/qrcode", h.QRCode)
	e.POST("/api/contacts", h.Create)
	e.PUT("/api/contacts/:id", h.Update)
	e.DELETE("/api/contacts/:id", h.Delete)
}

const contactPayload = `{
	"first_name": "John",
	"last_name": "Doe",
	"birth_date": "1990-12-15",
	"email": "john.doe@example.com",
	"phone_number": "123-456-7890"
}`

func TestContactHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().Create(mock.Anything, int64(1), mock.MatchedBy(func(in *usecase.ContactInput) bool {
		return in.FirstName == "John" &&
			in.Email == "john.doe@example.com" &&
			in.Birthday.Equal(time.Date(1990, time.December, 15, 0, 0, 0, 0, time.UTC))
	})).Return(newContact(10), nil).Once()

	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(contactPayload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got ContactResponse
	body := decodeResponse(t, rec, &got)
	assert.True(t, body.Success)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, "1990-12-15", got.BirthDate)
}

func TestContactHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "bad email", payload: strings.Replace(contactPayload, "john.doe@example.com", "not-an-email", 1)},
		{name: "bad date", payload: strings.Replace(contactPayload, "1990-12-15", "15/12/1990", 1)},
		{name: "missing first name", payload: strings.Replace(contactPayload, `"John"`, `""`, 1)},
		{name: "malformed json", payload: `{"first_name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockContactUsecase(t)
			e := newTestEcho(newCaller(entity.RoleUser))
			routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

			req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(tt.payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeResponse(t, rec, nil)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		})
	}
}

func TestContactHandler_CreateDuplicate(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().Create(mock.Anything, int64(1), mock.Anything).Return(nil, domainerrors.ErrContactAlreadyExists).Once()

	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(contactPayload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CONTACT_ALREADY_EXISTS", decodeResponse(t, rec, nil).Error.Code)
}

func TestContactHandler_ListPassesFilters(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().List(mock.Anything, int64(1), entity.ContactFilter{
		FirstName: "jo",
		Email:     "example",
		Skip:      5,
		Limit:     20,
	}).Return([]*entity.Contact{newContact(1), newContact(2)}, nil).Once()

	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts?first_name=jo&email=example&skip=5&limit=20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []ContactResponse
	decodeResponse(t, rec, &got)
	assert.Len(t, got, 2)
}

func TestContactHandler_ListRejectsNegativeSkip(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts?skip=-1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_Birthdays(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		days   int
		status int
	}{
		{name: "default window", query: "", days: 7, status: http.StatusOK},
		{name: "explicit window", query: "?days=30", days: 30, status: http.StatusOK},
		{name: "zero rejected", query: "?days=0", status: http.StatusBadRequest},
		{name: "too large rejected", query: "?days=367", status: http.StatusBadRequest},
		{name: "not a number", query: "?days=soon", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockContactUsecase(t)
			if tt.status == http.StatusOK {
				uc.EXPECT().UpcomingBirthdays(mock.Anything, int64(1), tt.days).Return([]*entity.Contact{}, nil).Once()
			}

			e := newTestEcho(newCaller(entity.RoleUser))
			routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts/birthdays"+tt.query, nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestContactHandler_GetNotFound(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().Get(mock.Anything, int64(1), int64(999)).Return(nil, domainerrors.ErrContactNotFound).Once()

	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeResponse(t, rec, nil)
	assert.Equal(t, "Contact not found", body.Message)
}

func TestContactHandler_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	for _, path := range []string{"/api/contacts/abc", "/api/contacts/0", "/api/contacts/-3/qrcode"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestContactHandler_Update(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	updated := newContact(3)
	updated.FirstName = "Johnny"
	uc.EXPECT().Update(mock.Anything, int64(1), int64(3), mock.Anything).Return(updated, nil).Once()

	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	req := httptest.NewRequest(http.MethodPut, "/api/contacts/3", strings.NewReader(strings.Replace(contactPayload, `"John"`, `"Johnny"`, 1)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got ContactResponse
	decodeResponse(t, rec, &got)
	assert.Equal(t, "Johnny", got.FirstName)
}

func TestContactHandler_DeleteReturnsContact(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().Delete(mock.Anything, int64(1), int64(4)).Return(newContact(4), nil).Once()

	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/contacts/4", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got ContactResponse
	decodeResponse(t, rec, &got)
	assert.Equal(t, int64(4), got.ID)
}

func TestContactHandler_QRCode(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().QRCode(mock.Anything, int64(1), int64(5)).Return(png, nil).Once()

	e := newTestEcho(newCaller(entity.RoleUser))
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts/5/qrcode", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestContactHandler_RequiresCaller(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	e := newTestEcho(nil)
	routeContacts(e, NewContactHandler(uc, newHandlerConfig()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
