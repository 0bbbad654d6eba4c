package bridge

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/headless/components/radiogroup"
	"github.com/grovetools/headless/config"
	"github.com/grovetools/headless/dom"
)

func newTestHost(t *testing.T) (*Host, *radiogroup.StateStore) {
	t.Helper()
	state, layer := radiogroup.New(radiogroup.Options{
		Entries: []radiogroup.Entry{
			{Value: "red", Label: "Red"},
			{Value: "green", Label: "Green"},
			{Value: "blue", Label: "Blue"},
		},
		Value: "red",
		Name:  "color",
	})
	host := NewHost(config.BridgeConfig{Path: "/ws", PingIntervalMS: 30000})
	host.Register("color", Wrap(state.Store(), layer))
	return host, state
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHostPushesInitialSnapshot(t *testing.T) {
	host, _ := newTestHost(t)
	srv := httptest.NewServer(host)
	defer srv.Close()

	conn := dial(t, srv)

	msg := readMessage(t, conn)
	assert.Equal(t, KindState, msg.Kind)
	assert.Equal(t, "color", msg.Target)

	state, ok := msg.State.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "red", state["Value"])
}

func TestHostDispatchesEvents(t *testing.T) {
	host, state := newTestHost(t)
	srv := httptest.NewServer(host)
	defer srv.Close()

	conn := dial(t, srv)
	readMessage(t, conn) // initial snapshot

	err := conn.WriteJSON(EventMessage{
		Target: "color",
		Part:   string(radiogroup.PartRadio),
		Type:   dom.OnKeyDown,
		Key:    dom.KeyArrowDown,
	})
	require.NoError(t, err)

	// The state change is pushed before the dispatch result frame.
	stateMsg := readMessage(t, conn)
	assert.Equal(t, KindState, stateMsg.Kind)
	snapshot, ok := stateMsg.State.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "green", snapshot["Value"])

	result := readMessage(t, conn)
	assert.Equal(t, KindResult, result.Kind)
	assert.True(t, result.Handled)
	assert.Equal(t, string(radiogroup.EventSelect), result.Event)

	assert.Equal(t, "green", state.Get().Value)
}

func TestHostRejectsUnknownTarget(t *testing.T) {
	host, _ := newTestHost(t)
	srv := httptest.NewServer(host)
	defer srv.Close()

	conn := dial(t, srv)
	readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(EventMessage{
		Target: "ghost",
		Part:   "root",
		Type:   dom.OnClick,
	}))

	msg := readMessage(t, conn)
	assert.Equal(t, KindError, msg.Kind)
	errBody, ok := msg.Error.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "BRIDGE_UNKNOWN_TARGET", errBody["code"])
}

func TestHostReportsUnboundHandler(t *testing.T) {
	host, _ := newTestHost(t)
	srv := httptest.NewServer(host)
	defer srv.Close()

	conn := dial(t, srv)
	readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(EventMessage{
		Target: "color",
		Part:   "nope",
		Type:   dom.OnClick,
	}))

	msg := readMessage(t, conn)
	assert.Equal(t, KindError, msg.Kind)
}

func TestWrapDispatch(t *testing.T) {
	state, layer := radiogroup.New(radiogroup.Options{
		Entries: []radiogroup.Entry{
			{Value: "a", Label: "A"},
			{Value: "b", Label: "B"},
		},
	})
	c := Wrap(state.Store(), layer)

	result, bound := c.Dispatch(string(radiogroup.PartRadio), dom.OnClick, dom.ClickEvent(0, 0), "b")
	require.True(t, bound)
	name, handled := result.Event()
	assert.True(t, handled)
	assert.Equal(t, radiogroup.EventSelect, name)
	assert.Equal(t, "b", state.Get().Value)

	_, bound = c.Dispatch("missing", dom.OnClick, dom.ClickEvent(0, 0))
	assert.False(t, bound)

	props := c.Props(string(radiogroup.PartRadio), "b")
	assert.Equal(t, "radio", props["role"])
}

func TestCheckOrigin(t *testing.T) {
	host := NewHost(config.BridgeConfig{AllowedOrigins: []string{"https://app.example"}})

	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Origin", "https://app.example")
	assert.True(t, host.checkOrigin(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, host.checkOrigin(req))

	open := NewHost(config.BridgeConfig{})
	assert.True(t, open.checkOrigin(req))
}
