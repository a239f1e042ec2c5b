package gallery_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/mdc/internal/config"
	"github.com/vango-dev/mdc/internal/gallery"
	"github.com/vango-dev/mdc/pkg/widget"
	"github.com/vango-dev/mdc/pkg/widget/remote"
)

func startServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	srv := gallery.NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestPage(t *testing.T) {
	ts := startServer(t, config.New())

	status, body := get(t, ts.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("GET / status = %d", status)
	}
	for _, want := range []string{
		`<link rel="stylesheet" href="https://unpkg.com/material-components-web@14.0.0/dist/material-components-web.min.css">`,
		`<script src="https://unpkg.com/material-components-web@14.0.0/dist/material-components-web.min.js"></script>`,
		`<div id="gallery">`,
		`Discard draft?`,
		`data-mdc-ref="r1"`,
		`new WebSocket(`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page lacks %q", want)
		}
	}
}

func TestHealthAndMetrics(t *testing.T) {
	ts := startServer(t, config.New())

	if status, body := get(t, ts.URL+"/healthz"); status != http.StatusOK || body != "ok\n" {
		t.Errorf("GET /healthz = %d %q", status, body)
	}
	status, body := get(t, ts.URL+"/metrics")
	if status != http.StatusOK || !strings.Contains(body, "mdc_connections_active 0") {
		t.Errorf("GET /metrics = %d, body lacks connection gauge", status)
	}

	cfg := config.New()
	cfg.Metrics.Enabled = false
	ts = startServer(t, cfg)
	if status, _ := get(t, ts.URL+"/metrics"); status != http.StatusNotFound {
		t.Errorf("GET /metrics with metrics disabled = %d, want 404", status)
	}
}

var openDialogHID = regexp.MustCompile(`data-action="open-dialog"[^>]*data-hid="(h\d+)"`)

// readUntil reads commands until match returns true.
func readUntil(t *testing.T, ws *websocket.Conn, match func(remote.Command) bool) []remote.Command {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	var seen []remote.Command
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("read after %d commands: %v", len(seen), err)
		}
		var c remote.Command
		if err := json.Unmarshal(data, &c); err != nil {
			t.Fatalf("decode %s: %v", data, err)
		}
		seen = append(seen, c)
		if match(c) {
			return seen
		}
	}
}

func TestWebSocketSession(t *testing.T) {
	ts := startServer(t, config.New())
	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	first := readUntil(t, ws, func(remote.Command) bool { return true })[0]
	if first.Op != remote.OpRender {
		t.Fatalf("first command = %s, want render", first.Op)
	}
	m := openDialogHID.FindStringSubmatch(first.HTML)
	if m == nil {
		t.Fatalf("no open-dialog button in %s", first.HTML)
	}

	send := func(msg string) {
		t.Helper()
		if err := ws.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			t.Fatal(err)
		}
	}
	send(`{"type":"dom","hid":"` + m[1] + `","event":"click"}`)

	var dialogID string
	cmds := readUntil(t, ws, func(c remote.Command) bool {
		if c.Op == remote.OpCreate && c.Kind == widget.KindDialog && dialogID == "" {
			dialogID = c.ID
		}
		return c.Op == remote.OpCall && c.Method == "open"
	})
	if dialogID == "" || cmds[len(cmds)-1].ID != dialogID {
		t.Fatalf("open call %+v does not target the first dialog %q", cmds[len(cmds)-1], dialogID)
	}

	send(`{"type":"event","id":"` + dialogID + `","name":"MDCDialog:closing","detail":{"action":"discard"}}`)
	readUntil(t, ws, func(c remote.Command) bool {
		return c.Op == remote.OpRender && strings.Contains(c.HTML, "Last dialog action: discard")
	})
}

func TestSessionsRefusedAfterClose(t *testing.T) {
	srv := gallery.NewServer(config.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	srv.Close()
	ws, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err == nil {
		ws.Close()
		t.Fatal("Dial() succeeded after Close")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Dial() response = %v, want 503", resp)
	}

	// A second Close returns without waiting on anything.
	srv.Close()
}
