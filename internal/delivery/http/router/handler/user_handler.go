package handler

import (
	"net/http"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/delivery/http/response"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// avatarFormField is the multipart field carrying the avatar image.
const avatarFormField = "file"

// UserHandler serves the authenticated user's own account.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me returns the user resolved from the bearer token.
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// UpdateAvatar replaces the avatar with an uploaded image.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		return response.BindingError(c, "Avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer file.Close()

	updated, err := h.uc.UpdateAvatar(c.Request().Context(), user, &usecase.AvatarInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(updated), "Avatar updated")
}
