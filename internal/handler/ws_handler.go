package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/response"
	"github.com/stemsi/student-admin/internal/service"
	ws "github.com/stemsi/student-admin/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler pushes the shared student list to browsers.
type WSHandler struct {
	studentService *service.StudentService
	log            zerolog.Logger
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(studentService *service.StudentService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		studentService: studentService,
		log:            log.With().Str("component", "ws_handler").Logger(),
		upgrader:       buildUpgrader(allowedOrigins),
	}
}

// StudentStream godoc
// WS /ws/v1/students/stream
// Sends the current student list on connect and every published list
// after it. Clients may send {"action":"refresh"} to trigger a reload and
// {"action":"ping"} to keep the connection alive.
func (h *WSHandler) StudentStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Str("request_id", response.RequestID(c)).Logger()
	wsLog.Info().Msg("Stream subscriber connected")

	sub := h.studentService.Students()
	defer sub.Close()

	// Only the writer goroutine touches the connection for writes.
	replies := make(chan interface{}, 4)
	readerDone := make(chan struct{})
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		// Unblocks the reader when the store shuts down.
		defer conn.Close()
		for {
			select {
			case students, ok := <-sub.C():
				if !ok {
					return
				}
				if err := ws.WriteTyped(conn, ws.StudentsEvent{Event: ws.EventStudents, Students: students}); err != nil {
					wsLog.Debug().Err(err).Msg("Stream write failed")
					return
				}
			case reply := <-replies:
				if err := ws.WriteTyped(conn, reply); err != nil {
					wsLog.Debug().Err(err).Msg("Stream write failed")
					return
				}
			case <-readerDone:
				return
			}
		}
	}()

	// The request context ends when this handler returns, which bounds
	// reloads started by a client that has since gone away.
	h.readLoop(c.Request.Context(), conn, wsLog, replies, writerDone)
	close(readerDone)
	<-writerDone
	wsLog.Debug().Msg("Stream subscriber disconnected")
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, wsLog zerolog.Logger, replies chan<- interface{}, writerDone <-chan struct{}) {
	send := func(v interface{}) bool {
		select {
		case replies <- v:
			return true
		case <-writerDone:
			return false
		}
	}

	for {
		var msg ws.RequestEnvelope
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			if !send(ws.PongResponse{Event: ws.EventPong}) {
				return
			}
		case ws.ActionRefresh:
			// The new list reaches this client through its subscription.
			if _, err := h.studentService.LoadStudents(ctx); err != nil {
				if !send(ws.ErrorResponse{Event: ws.EventError, Error: "refresh failed"}) {
					return
				}
			}
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			if !send(ws.ErrorResponse{Event: ws.EventError, Error: "unknown action: " + string(msg.Action)}) {
				return
			}
		}
	}
}
