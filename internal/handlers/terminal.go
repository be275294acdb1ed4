package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/terminal"
)

const terminalWriteWait = 10 * time.Second

// TerminalFactory builds a terminal whose events go to onEvent.
type TerminalFactory func(onEvent func(terminal.Event)) *terminal.Terminal

type TerminalHandler struct {
	newTerminal TerminalFactory
	upgrader    websocket.Upgrader
}

// terminalInput is a client frame. Plain-text frames are accepted as input too.
type terminalInput struct {
	Input string `json:"input"`
}

func NewTerminalHandler(newTerminal TerminalFactory, allowedOrigins []string) *TerminalHandler {
	return &TerminalHandler{
		newTerminal: newTerminal,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

// Commands godoc
// @Summary     Terminal command table
// @Tags        terminal
// @Produce     json
// @Success     200 {array} terminal.Command
// @Router      /api/terminal/commands [get]
func (h *TerminalHandler) Commands(c *gin.Context) {
	c.JSON(http.StatusOK, terminal.Commands)
}

// Connect godoc
// @Summary     Interactive terminal session
// @Description Upgrades to a websocket. Send {"input": "<command line>"} frames; the server pushes
// @Description {"type": "line"|"clear"|"theme", ...} events. Each connection gets its own terminal.
// @Tags        terminal
// @Success     101 {string} string "Switching Protocols"
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/terminal/ws [get]
func (h *TerminalHandler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written an HTTP error when the handshake was bad.
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		}
		return
	}
	defer conn.Close()

	logger := log.With().Str("component", "terminal").Str("remote", c.ClientIP()).Logger()

	// Events are emitted with the terminal lock held, which serializes writes.
	send := func(ev terminal.Event) {
		_ = conn.SetWriteDeadline(time.Now().Add(terminalWriteWait))
		if err := conn.WriteJSON(ev); err != nil {
			logger.Debug().Err(err).Msg("terminal write failed")
		}
	}

	term := h.newTerminal(send)
	defer term.Close()

	theme := term.Theme()
	send(terminal.Event{Type: terminal.EventTheme, Theme: &theme})
	term.Greet()

	ctx := c.Request.Context()
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("terminal connection closed")
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		input := string(data)
		var frame terminalInput
		if json.Unmarshal(data, &frame) == nil {
			input = frame.Input
		}
		term.Execute(ctx, input)
	}
}
