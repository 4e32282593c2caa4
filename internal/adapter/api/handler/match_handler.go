package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/usecase"
	"pawmatch/pkg/response"
)

type MatchHandler struct {
	matchUseCase *usecase.MatchUseCase
}

func NewMatchHandler(matchUseCase *usecase.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

type matchPreferencesPayload struct {
	Purpose       string           `json:"purpose" validate:"required,oneof=breeding playdate"`
	PreferredDate *time.Time       `json:"preferred_date"`
	Location      *locationPayload `json:"location"`
}

type createMatchRequest struct {
	Dog1ID           string                   `json:"dog1_id" validate:"required"`
	Dog2ID           string                   `json:"dog2_id" validate:"required"`
	MatchPreferences *matchPreferencesPayload `json:"match_preferences"`
}

type updateMatchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

func (p *matchPreferencesPayload) toEntity() *entity.MatchPreferences {
	if p == nil {
		return nil
	}
	prefs := &entity.MatchPreferences{
		Purpose:       p.Purpose,
		PreferredDate: p.PreferredDate,
	}
	if p.Location != nil {
		prefs.Location = &entity.Location{
			Latitude:  p.Location.Latitude,
			Longitude: p.Location.Longitude,
			Address:   p.Location.Address,
		}
	}
	return prefs
}

func (h *MatchHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createMatchRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	match, err := h.matchUseCase.Create(c.Request().Context(), uid, usecase.CreateMatchInput{
		Dog1ID:           req.Dog1ID,
		Dog2ID:           req.Dog2ID,
		MatchPreferences: req.MatchPreferences.toEntity(),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, match)
}

func (h *MatchHandler) GetByID(c echo.Context) error {
	uid := c.Get("uid").(string)

	match, err := h.matchUseCase.GetByID(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, match)
}

func (h *MatchHandler) UpdateStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateMatchStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	match, err := h.matchUseCase.UpdateStatus(c.Request().Context(), uid, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, match)
}

func (h *MatchHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	matches, err := h.matchUseCase.ListMine(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, matches)
}
