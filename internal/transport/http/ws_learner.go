package http

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Value string `json:"value"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload,omitempty"`
}

type outputPayload struct {
	Text string `json:"text"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// wsLearner speaks the drill's line protocol over a websocket. Text written by
// the drill is buffered and sent as one "output" message right before the
// learner is asked for input with "prompt".
type wsLearner struct {
	conn    *websocket.Conn
	idle    time.Duration
	pending strings.Builder
}

func newWSLearner(conn *websocket.Conn, idle time.Duration) *wsLearner {
	return &wsLearner{conn: conn, idle: idle}
}

func (l *wsLearner) Write(p []byte) (int, error) {
	return l.pending.Write(p)
}

func (l *wsLearner) ReadLine(ctx context.Context) (string, error) {
	if err := l.flush(); err != nil {
		return "", err
	}
	if err := l.conn.WriteJSON(outboundMessage[any]{Type: "prompt"}); err != nil {
		return "", err
	}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if l.idle > 0 {
			_ = l.conn.SetReadDeadline(time.Now().Add(l.idle))
		}
		msg, err := l.readMessage(ctx)
		if err != nil {
			return "", err
		}
		if msg.Type != "answer" {
			if err := l.send("error", errorPayload{Message: "unsupported message type"}); err != nil {
				return "", err
			}
			continue
		}
		var payload answerPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			// Hand the drill something unparsable so it re-prompts.
			return "", nil
		}
		return payload.Value, nil
	}
}

// readMessage blocks for the next frame. ReadJSON ignores ctx, so
// cancellation expires the read deadline to unblock it.
func (l *wsLearner) readMessage(ctx context.Context) (inboundMessage, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = l.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	var msg inboundMessage
	if err := l.conn.ReadJSON(&msg); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return msg, ctxErr
		}
		return msg, err
	}
	return msg, nil
}

func (l *wsLearner) flush() error {
	if l.pending.Len() == 0 {
		return nil
	}
	text := l.pending.String()
	l.pending.Reset()
	return l.send("output", outputPayload{Text: text})
}

func (l *wsLearner) send(typ string, payload any) error {
	return l.conn.WriteJSON(outboundMessage[any]{Type: typ, Payload: payload})
}
