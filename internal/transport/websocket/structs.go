package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player      `json:"player,omitempty"`
	Game   *entity.Game        `json:"game,omitempty"`
	Stats  *entity.PlayerStats `json:"stats,omitempty"`
	Error  string              `json:"error,omitempty"`
}

type ConnectPayload struct {
	Player struct {
		ID string `json:"id"`
	} `json:"player"`
}

type NewGamePayload struct {
	Player struct {
		ID string `json:"id"`
	} `json:"player"`
	Game struct {
		Type string `json:"type"`
	} `json:"game"`
}

type JoinGamePayload struct {
	Player struct {
		ID string `json:"id"`
	} `json:"player"`
	Game struct {
		ID string `json:"id"`
	} `json:"game"`
}

type TurnPayload struct {
	Player struct {
		ID string `json:"id"`
	} `json:"player"`
	Cell int `json:"cell"`
}

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool   // last frame of the message
	opCode  byte   // frame type per RFC 6455
	length  uint64 // payload length
	payload []byte
}
