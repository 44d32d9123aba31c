package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"
	"github.com/mj-jones15/pastProjects/internal/app"
	"github.com/mj-jones15/pastProjects/internal/domain"
)

type WSHandler struct {
	service  *app.DrillService
	upgrader websocket.Upgrader
	idle     time.Duration

	// base outlives hijacked requests; Close cancels it to end open drills.
	base   context.Context
	cancel context.CancelFunc
}

// NewWSHandler serves drills over websockets. idle bounds how long the
// server waits for each answer; zero waits forever.
func NewWSHandler(service *app.DrillService, idle time.Duration) *WSHandler {
	base, cancel := context.WithCancel(context.Background())
	return &WSHandler{
		service: service,
		idle:    idle,
		base:    base,
		cancel:  cancel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Close cancels every drill still running on a connection. Register it with
// http.Server.RegisterOnShutdown; Shutdown does not track hijacked conns.
func (h *WSHandler) Close() {
	h.cancel()
}

// ServeWS upgrades the request and runs one drill on the connection. The
// optional worksheet query parameter picks a stored sheet.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	worksheetID := r.URL.Query().Get("worksheet")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Errorf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(h.base, cancel)
	defer stop()

	learner := newWSLearner(conn, h.idle)
	result, err := h.service.Start(ctx, worksheetID, learner)
	if ferr := learner.flush(); ferr != nil {
		glog.V(1).Infof("ws flush: %v", ferr)
		return
	}
	if err != nil {
		if !errors.Is(err, domain.ErrSeatTaken) && !errors.Is(err, context.Canceled) {
			glog.Errorf("drill on %s failed: %v", r.RemoteAddr, err)
		}
		_ = learner.send("error", errorPayload{Message: err.Error()})
		return
	}
	_ = learner.send("done", result)
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "drill complete"))
}
