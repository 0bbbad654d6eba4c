package bridge

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/config"
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/errors"
	"github.com/grovetools/headless/logging"
)

// EventMessage is an inbound renderer event addressed to a registered
// component. Field names follow the DOM event shape so a browser renderer
// can forward its events with minimal translation.
type EventMessage struct {
	Target string `json:"target"`
	Part   string `json:"part"`
	Type   string `json:"type"`

	Key      string  `json:"key,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	ShiftKey bool    `json:"shiftKey,omitempty"`
	CtrlKey  bool    `json:"ctrlKey,omitempty"`
	AltKey   bool    `json:"altKey,omitempty"`
	MetaKey  bool    `json:"metaKey,omitempty"`

	Args []string `json:"args,omitempty"`
}

// Message is an outbound frame: a state snapshot after a change, the result
// of a dispatched event, or a structured error.
type Message struct {
	Kind   string `json:"kind"`
	Target string `json:"target,omitempty"`

	State   any    `json:"state,omitempty"`
	Handled bool   `json:"handled,omitempty"`
	Event   string `json:"event,omitempty"`
	Error   any    `json:"error,omitempty"`
}

// Outbound frame kinds.
const (
	KindState  = "state"
	KindResult = "result"
	KindError  = "error"
)

// Host serves registered components over a websocket endpoint.
type Host struct {
	cfg      config.BridgeConfig
	logger   *logrus.Entry
	upgrader websocket.Upgrader

	mu         sync.RWMutex
	components map[string]Component
	closed     bool

	// dispatchMu serializes all store access across sessions: the stores
	// underneath the components are not safe for concurrent use, so
	// subscription changes and event dispatch take this lock.
	dispatchMu sync.Mutex
}

// NewHost creates a bridge host for the given configuration.
func NewHost(cfg config.BridgeConfig) *Host {
	h := &Host{
		cfg:        cfg,
		logger:     logging.NewLogger("bridge"),
		components: make(map[string]Component),
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: h.checkOrigin,
	}
	return h
}

// Register exposes a component under a target name. Registering the same
// name twice replaces the previous component.
func (h *Host) Register(target string, c Component) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.components[target] = c
}

// ListenAndServe runs the websocket endpoint until ctx is cancelled.
func (h *Host) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(h.cfg.Path, h)

	srv := &http.Server{Addr: h.cfg.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		h.mu.Lock()
		h.closed = true
		h.mu.Unlock()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	h.logger.WithField("addr", h.cfg.Addr).Info("bridge listening")
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return errors.New(errors.ErrCodeBridgeClosed, "bridge shut down")
	}
	return err
}

// ServeHTTP upgrades the connection and runs the session loop. Exposed so
// hosts embedding the bridge in an existing server can mount it themselves.
func (h *Host) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	h.serveConn(conn)
}

func (h *Host) checkOrigin(r *http.Request) bool {
	if len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range h.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// serveConn runs one renderer session: a writer goroutine draining the
// outbound queue, per-component subscriptions feeding state frames into it,
// and a read loop dispatching inbound events under the host dispatch lock.
func (h *Host) serveConn(conn *websocket.Conn) {
	defer conn.Close()

	out := make(chan Message, 64)
	done := make(chan struct{})
	go h.writeLoop(conn, out, done)
	defer close(done)

	// Initial snapshots, then push on every change.
	h.mu.RLock()
	targets := make(map[string]Component, len(h.components))
	for name, c := range h.components {
		targets[name] = c
	}
	h.mu.RUnlock()

	send := func(msg Message) {
		select {
		case out <- msg:
		default:
			h.logger.WithField("target", msg.Target).Warn("slow renderer, dropping frame")
		}
	}
	h.dispatchMu.Lock()
	for name, c := range targets {
		name, c := name, c
		send(Message{Kind: KindState, Target: name, State: c.Snapshot()})
		unsubscribe := c.Subscribe(func() {
			send(Message{Kind: KindState, Target: name, State: c.Snapshot()})
		})
		defer func() {
			h.dispatchMu.Lock()
			unsubscribe()
			h.dispatchMu.Unlock()
		}()
	}
	h.dispatchMu.Unlock()

	for {
		var msg EventMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WithError(err).Warn("renderer connection lost")
			}
			return
		}
		send(h.handleMessage(targets, msg))
	}
}

// handleMessage dispatches one decoded event and builds the result frame.
func (h *Host) handleMessage(targets map[string]Component, msg EventMessage) Message {
	c, ok := targets[msg.Target]
	if !ok {
		err := errors.BridgeUnknownTarget(msg.Target)
		h.logger.WithField("target", msg.Target).Warn(err.Message)
		return Message{Kind: KindError, Target: msg.Target, Error: err}
	}

	h.dispatchMu.Lock()
	result, bound := c.Dispatch(msg.Part, msg.Type, buildEvent(msg), msg.Args...)
	h.dispatchMu.Unlock()
	if !bound {
		err := errors.New(errors.ErrCodeUnknownPart, "no handler bound").
			WithDetail("part", msg.Part).
			WithDetail("event_type", msg.Type)
		return Message{Kind: KindError, Target: msg.Target, Error: err}
	}

	reply := Message{Kind: KindResult, Target: msg.Target}
	if name, handled := result.Event(); handled {
		reply.Handled = true
		reply.Event = string(name)
	}
	return reply
}

func (h *Host) writeLoop(conn *websocket.Conn, out <-chan Message, done <-chan struct{}) {
	interval := time.Duration(h.cfg.PingIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-out:
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// buildEvent maps the wire shape onto the native event the handlers expect.
func buildEvent(msg EventMessage) *dom.Event {
	return &dom.Event{
		Type:     msg.Type,
		Key:      msg.Key,
		X:        msg.X,
		Y:        msg.Y,
		ShiftKey: msg.ShiftKey,
		CtrlKey:  msg.CtrlKey,
		AltKey:   msg.AltKey,
		MetaKey:  msg.MetaKey,
	}
}
