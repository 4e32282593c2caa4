package handler

import (
	"github.com/labstack/echo/v4"

	"pawmatch/internal/usecase"
	"pawmatch/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendMessageRequest struct {
	MatchID string `json:"match_id" validate:"required"`
	Content string `json:"content" validate:"required,max=1000"`
}

func (h *MessageHandler) Send(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.Send(c.Request().Context(), uid, usecase.SendMessageInput{
		MatchID: req.MatchID,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) ListByMatch(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.messageUseCase.ListByMatch(c.Request().Context(), uid, c.Param("matchId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.messageUseCase.MarkRead(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Message marked as read"})
}
