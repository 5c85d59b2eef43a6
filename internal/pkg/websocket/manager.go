package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

const writeWait = 10 * time.Second

// Client is one live connection subscribed to a booking session
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	mu        sync.Mutex
}

// WriteJSON serialises writes; gorilla connections allow one writer at a time
func (c *Client) WriteJSON(v interface{}) error {
	if c.Conn == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteJSON(v)
}

// Manager tracks live connections per booking session
type Manager struct {
	sync.RWMutex
	clients  map[string]map[*Client]struct{}
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request, registers the connection under
// sessionID and runs handle until it returns.
func (m *Manager) HandleConnection(c echo.Context, sessionID string, handle func(*Client) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &Client{SessionID: sessionID, Conn: ws}
	m.AddClient(client)
	defer m.RemoveClient(client)

	return handle(client)
}

// AddClient registers a client under its session
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.clients[client.SessionID]
	if !ok {
		set = make(map[*Client]struct{})
		m.clients[client.SessionID] = set
	}
	set[client] = struct{}{}
}

// RemoveClient unregisters a client
func (m *Manager) RemoveClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.clients[client.SessionID]
	if !ok {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(m.clients, client.SessionID)
	}
}

// ClientCount returns the number of live connections for a session
func (m *Manager) ClientCount(sessionID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[sessionID])
}

// SendMessage sends one event to a client
func (m *Manager) SendMessage(client *Client, event string, data interface{}) error {
	if client == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return client.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error event to a client
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendCategorizedError logs err and sends the client either its text or a
// generic message depending on severity.
func (m *Manager) SendCategorizedError(client *Client, err error, code string, severity constants.ErrorSeverity) error {
	sessionID := ""
	if client != nil {
		sessionID = client.SessionID
	}
	logger.Error("WebSocket operation failed",
		logger.String("session_id", sessionID),
		logger.String("error_code", code),
		logger.Err(err))

	if severity == constants.ErrorSeverityClient {
		return m.SendErrorMessage(client, code, err.Error())
	}
	return m.SendErrorMessage(client, code, "Operation failed")
}

// Broadcast pushes an event to every connection of a session
func (m *Manager) Broadcast(sessionID string, event string, data interface{}) {
	m.RLock()
	targets := make([]*Client, 0, len(m.clients[sessionID]))
	for client := range m.clients[sessionID] {
		targets = append(targets, client)
	}
	m.RUnlock()

	for _, client := range targets {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("session_id", sessionID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}
