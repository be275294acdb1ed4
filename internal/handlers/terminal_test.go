package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/github"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/terminal"
)

type stubGitHub struct{}

func (stubGitHub) Contributions(context.Context, string) (*github.Contributions, error) {
	return &github.Contributions{Total: map[string]int{}}, nil
}

func (stubGitHub) User(context.Context, string) (*github.User, error) {
	return &github.User{Login: "octocat"}, nil
}

func (stubGitHub) Repos(context.Context, string, int) ([]github.Repo, error) {
	return nil, nil
}

func terminalServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	factory := func(onEvent func(terminal.Event)) *terminal.Terminal {
		return terminal.New(terminal.Options{
			Username: "octocat",
			GitHub:   stubGitHub{},
			OnEvent:  onEvent,
			Sleep:    func(context.Context, time.Duration) error { return nil },
		})
	}
	h := handlers.NewTerminalHandler(factory, []string{"*"})

	router := gin.New()
	router.GET("/api/terminal/ws", h.Connect)
	router.GET("/api/terminal/commands", h.Commands)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/terminal/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads events until match returns true.
func readUntil(t *testing.T, conn *websocket.Conn, match func(terminal.Event) bool) []terminal.Event {
	t.Helper()
	var events []terminal.Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var ev terminal.Event
		require.NoError(t, conn.ReadJSON(&ev))
		events = append(events, ev)
		if match(ev) {
			return events
		}
	}
}

func isLine(text string) func(terminal.Event) bool {
	return func(ev terminal.Event) bool {
		return ev.Type == terminal.EventLine && ev.Line != nil && strings.Contains(ev.Line.Text, text)
	}
}

func TestTerminalWebsocket_Session(t *testing.T) {
	conn := dial(t, terminalServer(t))

	first := readUntil(t, conn, isLine("sb install"))
	assert.Equal(t, terminal.EventTheme, first[0].Type)
	assert.Equal(t, "default", first[0].Theme.Name)

	require.NoError(t, conn.WriteJSON(map[string]string{"input": "frobnicate"}))
	events := readUntil(t, conn, isLine("please run sb install first"))
	assert.Equal(t, terminal.LineError, events[len(events)-1].Line.Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("sb install")))
	readUntil(t, conn, isLine("Installation complete"))

	require.NoError(t, conn.WriteJSON(map[string]string{"input": "frobnicate"}))
	readUntil(t, conn, isLine("Command not found: frobnicate"))

	require.NoError(t, conn.WriteJSON(map[string]string{"input": "clear"}))
	readUntil(t, conn, func(ev terminal.Event) bool { return ev.Type == terminal.EventClear })

	require.NoError(t, conn.WriteJSON(map[string]string{"input": "theme set ocean"}))
	events = readUntil(t, conn, func(ev terminal.Event) bool { return ev.Type == terminal.EventTheme })
	assert.Equal(t, "ocean", events[len(events)-1].Theme.Name)
}

func TestTerminalWebsocket_RejectsForeignOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handlers.NewTerminalHandler(func(func(terminal.Event)) *terminal.Terminal { return nil }, []string{"https://portfolio.example.com"})
	router := gin.New()
	router.GET("/api/terminal/ws", h.Connect)
	server := httptest.NewServer(router)
	defer server.Close()

	header := http.Header{"Origin": []string{"https://evil.example.com"}}
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/terminal/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTerminalCommands(t *testing.T) {
	server := terminalServer(t)

	resp, err := http.Get(server.URL + "/api/terminal/commands")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
