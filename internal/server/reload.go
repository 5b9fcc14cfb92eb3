package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadPath is the websocket endpoint pages connect to in watch mode. It
// sits outside the base path so the script works for any deployment.
const ReloadPath = "/__reload"

const reloadWriteWait = 2 * time.Second

// reloadScript is appended to served HTML pages when live reload is on.
const reloadScript = `<script>
(function() {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "` + ReloadPath + `");
  ws.onmessage = function(ev) { if (ev.data === "reload") location.reload(); };
})();
</script>
`

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected preview pages.
type reloadHub struct {
	logger *slog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newReloadHub(logger *slog.Logger) *reloadHub {
	return &reloadHub{logger: logger, conns: make(map[*websocket.Conn]struct{})}
}

func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("reload upgrade failed", "error", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)

	// Pages never send anything; reading just notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("reload connection closed", "error", err)
			}
			return
		}
	}
}

func (h *reloadHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *reloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

func (h *reloadHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// broadcast tells every page to reload and returns how many were told.
// Connections that fail the write are dropped.
func (h *reloadHub) broadcast() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for conn := range h.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(reloadWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			delete(h.conns, conn)
			conn.Close()
			continue
		}
		sent++
	}
	return sent
}

// closeAll ends every connection. Hijacked connections are not closed by
// http.Server.Shutdown.
func (h *reloadHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server stopping")
	for conn := range h.conns {
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(reloadWriteWait))
		conn.Close()
		delete(h.conns, conn)
	}
}

// injectReload inserts the reload script before </body>, or appends it when
// the page has no body end tag.
func injectReload(page []byte) []byte {
	i := bytes.LastIndex(page, []byte("</body>"))
	if i < 0 {
		return append(append([]byte(nil), page...), reloadScript...)
	}
	out := make([]byte, 0, len(page)+len(reloadScript))
	out = append(out, page[:i]...)
	out = append(out, reloadScript...)
	return append(out, page[i:]...)
}
