package handler

import (
	"github.com/labstack/echo/v4"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/usecase"
	"pawmatch/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type preferencesPayload struct {
	Notifications bool    `json:"notifications"`
	EmailUpdates  bool    `json:"email_updates"`
	Radius        float64 `json:"radius" validate:"min=1,max=100"`
}

func (p *preferencesPayload) toEntity() *entity.Preferences {
	if p == nil {
		return nil
	}
	return &entity.Preferences{
		Notifications: p.Notifications,
		EmailUpdates:  p.EmailUpdates,
		Radius:        p.Radius,
	}
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	if users == nil {
		users = []*entity.User{}
	}

	return response.Success(c, users)
}

func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.userUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, c.Param("id"), usecase.UpdateProfileInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		PhotoURL:    req.PhotoURL,
		Preferences: req.Preferences.toEntity(),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req preferencesPayload
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.userUseCase.UpdatePreferences(c.Request().Context(), uid, c.Param("id"), usecase.UpdatePreferencesInput{
		Notifications: req.Notifications,
		EmailUpdates:  req.EmailUpdates,
		Radius:        req.Radius,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Preferences updated successfully"})
}

func (h *UserHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.userUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "User deleted successfully"})
}
