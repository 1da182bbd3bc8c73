// Package inspector serves a read-only debug view of a styled tree over
// HTTP: the tree with computed styles as JSON, Prometheus metrics, and a
// WebSocket stream of style-pass stats. It is a development-mode
// collaborator; nothing in it mutates the tree.
package inspector

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/floem-go/floem/pkg/style"
	"github.com/floem-go/floem/pkg/view"
)

// ViewNode is the JSON shape of one view in the tree dump.
type ViewNode struct {
	ID              uint64            `json:"id"`
	Classes         []string          `json:"classes,omitempty"`
	Computed        map[string]string `json:"computed,omitempty"`
	Selectors       []string          `json:"selectors,omitempty"`
	FullResolutions uint64            `json:"fullResolutions"`
	FastPathApplies uint64            `json:"fastPathApplies"`
	Children        []ViewNode        `json:"children,omitempty"`
}

// PassEvent is streamed to live clients after each style pass.
type PassEvent struct {
	ViewsVisited    int     `json:"viewsVisited"`
	FullResolutions int     `json:"fullResolutions"`
	FastPathApplies int     `json:"fastPathApplies"`
	Iterations      int     `json:"iterations"`
	DurationMicros  float64 `json:"durationMicros"`
}

// Inspector serves the debug endpoints for one root.
type Inspector struct {
	root   *view.Root
	logger *slog.Logger

	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// New builds an inspector over a styled tree. A nil logger falls back to
// slog.Default().
func New(root *view.Root, logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inspector{
		root:    root,
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
	}
}

// Routes returns the inspector's HTTP routes:
//
//	GET /tree     - JSON dump of the view tree with computed styles
//	GET /metrics  - Prometheus metrics
//	GET /live     - WebSocket stream of style-pass stats
func (i *Inspector) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/tree", i.handleTree)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/live", i.handleLive)
	return r
}

func (i *Inspector) handleTree(w http.ResponseWriter, req *http.Request) {
	tree := snapshotView(i.root.View())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tree); err != nil {
		i.logger.Error("inspector: encoding tree", "error", err)
	}
}

func snapshotView(v *view.View) ViewNode {
	st := v.State()
	node := ViewNode{
		ID:              v.ID(),
		FullResolutions: st.FullResolutions(),
		FastPathApplies: st.FastPathApplies(),
		Selectors:       st.HasStyleSelectors().Active(),
	}
	for _, c := range st.Classes() {
		node.Classes = append(node.Classes, c.Name())
	}
	if computed := st.Computed(); computed != nil {
		node.Computed = make(map[string]string, computed.PropCount())
		computed.ForEach(func(p *style.Prop, value any) {
			node.Computed[p.Name()] = valueString(value)
		})
	}
	for _, c := range v.Children() {
		node.Children = append(node.Children, snapshotView(c))
	}
	return node
}

func valueString(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	return string(b)
}

func (i *Inspector) handleLive(w http.ResponseWriter, req *http.Request) {
	conn, err := i.upgrader.Upgrade(w, req, nil)
	if err != nil {
		i.logger.Warn("inspector: websocket upgrade failed", "error", err)
		return
	}

	i.mu.Lock()
	i.clients[conn] = true
	i.mu.Unlock()
	i.logger.Debug("inspector: live client connected", "clients", i.ClientCount())

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	i.mu.Lock()
	delete(i.clients, conn)
	i.mu.Unlock()
	conn.Close()
}

// NotifyPass streams a style pass summary to all live clients. Call it from
// the update loop after each pass.
func (i *Inspector) NotifyPass(stats view.PassStats) {
	event := PassEvent{
		ViewsVisited:    stats.ViewsVisited,
		FullResolutions: stats.FullResolutions,
		FastPathApplies: stats.FastPathApplies,
		Iterations:      stats.Iterations,
		DurationMicros:  float64(stats.Duration.Microseconds()),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	i.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(i.clients))
	for client := range i.clients {
		clients = append(clients, client)
	}
	i.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			i.mu.Lock()
			delete(i.clients, client)
			i.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected live clients.
func (i *Inspector) ClientCount() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.clients)
}

// Close closes all live client connections.
func (i *Inspector) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	for client := range i.clients {
		client.Close()
		delete(i.clients, client)
	}
}
