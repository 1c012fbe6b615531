package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/emberkeep/zoneforge/internal/config"
	"github.com/emberkeep/zoneforge/internal/theme"
)

func newTestServer(t *testing.T) (*httptest.Server, *websocket.Conn) {
	t.Helper()

	srv := New(config.DefaultConfig(), theme.NewLibrary(nil), nil)
	ts := httptest.NewServer(http.HandlerFunc(srv.handleUpgrade))

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("failed to dial test server: %v", err)
	}
	return ts, conn
}

func TestGenerateRequest(t *testing.T) {
	ts, conn := newTestServer(t)
	defer ts.Close()
	defer conn.Close()

	req := Request{Op: OpGenerate, Theme: "catacombs", Seed: 42, Width: 30, Height: 30}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("failed to read response: %v", err)
	}

	if !resp.OK {
		t.Fatalf("generate failed: %s", resp.Error)
	}
	if resp.Report == nil {
		t.Fatal("expected a report in the response")
	}
	if resp.Report.Seed != 42 {
		t.Errorf("report seed = %d, want 42", resp.Report.Seed)
	}
	if resp.Tiles == "" {
		t.Error("expected a tile rendering in the response")
	}
	if lines := strings.Count(resp.Tiles, "\n"); lines != 30 {
		t.Errorf("tile rendering has %d rows, want 30", lines)
	}
}

func TestGenerateUnknownTheme(t *testing.T) {
	ts, conn := newTestServer(t)
	defer ts.Close()
	defer conn.Close()

	req := Request{Op: OpGenerate, Theme: "nope", Seed: 1, Width: 20, Height: 20}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.OK {
		t.Fatal("expected an error for unknown theme")
	}
	if !strings.Contains(resp.Error, "nope") {
		t.Errorf("error %q should name the bad theme", resp.Error)
	}
}

func TestGenerateSizeLimit(t *testing.T) {
	ts, conn := newTestServer(t)
	defer ts.Close()
	defer conn.Close()

	req := Request{Op: OpGenerate, Theme: "catacombs", Seed: 1, Width: 100000, Height: 20}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.OK {
		t.Fatal("expected oversized request to be rejected")
	}
}

func TestThemesRequest(t *testing.T) {
	ts, conn := newTestServer(t)
	defer ts.Close()
	defer conn.Close()

	if err := conn.WriteJSON(Request{Op: OpThemes}); err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if !resp.OK {
		t.Fatalf("themes request failed: %s", resp.Error)
	}

	found := false
	for _, name := range resp.Themes {
		if name == "catacombs" {
			found = true
		}
	}
	if !found {
		t.Errorf("theme list %v should include catacombs", resp.Themes)
	}
}

func TestSaveWithoutStore(t *testing.T) {
	ts, conn := newTestServer(t)
	defer ts.Close()
	defer conn.Close()

	req := Request{Op: OpSave, Name: "depths", Theme: "catacombs", Seed: 7, Width: 20, Height: 20}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.OK {
		t.Fatal("expected save to fail without a configured store")
	}
}

func TestUnknownOp(t *testing.T) {
	ts, conn := newTestServer(t)
	defer ts.Close()
	defer conn.Close()

	if err := conn.WriteJSON(Request{Op: "bogus"}); err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.OK {
		t.Fatal("expected unknown op to produce an error")
	}
}
