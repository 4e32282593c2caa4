package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"pawmatch/internal/adapter/api/middleware"
	ws "pawmatch/internal/infrastructure/websocket"
	"pawmatch/pkg/errors"
	"pawmatch/pkg/response"
)

type WebSocketHandler struct {
	wsManager *ws.Manager
	verifier  middleware.TokenVerifier
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict origins once the client domains are fixed
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, verifier middleware.TokenVerifier) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
		verifier:  verifier,
	}
}

// HandleWebSocket authenticates the handshake and upgrades the connection.
// Unauthenticated handshakes are rejected before the upgrade.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return response.Error(c, err)
	}

	uid, err := h.verifier.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: uid,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
