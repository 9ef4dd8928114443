package websocket

import "github.com/stemsi/student-admin/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing    Action = "ping"
	ActionRefresh Action = "refresh"
)

// RequestEnvelope is every client message; only the action matters.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventStudents Event = "students"
	EventError    Event = "error"
	EventPong     Event = "pong"
)

// StudentsEvent carries a complete published student list. Clients
// replace their copy with it.
type StudentsEvent struct {
	Event    Event           `json:"event"`
	Students []model.Student `json:"students"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
