// Package server exposes zone generation over WebSocket. Clients connect to
// /ws, send JSON requests, and receive one JSON response per request.
package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/emberkeep/zoneforge/internal/config"
	"github.com/emberkeep/zoneforge/internal/logger"
	"github.com/emberkeep/zoneforge/internal/store"
	"github.com/emberkeep/zoneforge/internal/theme"
	"github.com/emberkeep/zoneforge/internal/zone"
)

// Server handles generation requests over WebSocket.
type Server struct {
	cfg    *config.ServerConfig
	themes *theme.Library
	zones  *store.Store
}

// New builds a Server. The store may be nil; save and load requests then
// report an error to the client instead of persisting.
func New(cfg *config.ServerConfig, themes *theme.Library, zones *store.Store) *Server {
	return &Server{cfg: cfg, themes: themes, zones: zones}
}

// Run registers the WebSocket endpoint and blocks serving it.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleUpgrade)

	logger.Info("listening", "address", s.cfg.Listen.Addr)
	return http.ListenAndServe(s.cfg.Listen.Addr, mux)
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || sameOrigin(origin, r.Host) {
				return true
			}
			allowed := s.cfg.Listen.IsOriginAllowed(origin)
			if !allowed {
				logger.Warning("connection rejected, origin not allowed",
					"origin", origin, "remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("upgrade failed", "error", err)
		return
	}

	go s.handleConnection(conn)
}

// sameOrigin reports whether the Origin header points back at our own host.
func sameOrigin(origin, host string) bool {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://")
	return trimmed == host
}

func (s *Server) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	if max := s.cfg.Listen.MaxMessageSize; max > 0 {
		conn.SetReadLimit(max)
	}

	remote := conn.RemoteAddr().String()
	logger.Info("client connected", "remote_addr", remote)

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warning("read failed", "remote_addr", remote, "error", err)
			}
			return
		}

		resp := s.dispatch(&req)
		if err := conn.WriteJSON(resp); err != nil {
			logger.Warning("write failed", "remote_addr", remote, "error", err)
			return
		}
	}
}

func (s *Server) dispatch(req *Request) *Response {
	switch req.Op {
	case OpGenerate:
		return s.handleGenerate(req)
	case OpThemes:
		return s.handleThemes(req)
	case OpSave:
		return s.handleSave(req)
	case OpLoad:
		return s.handleLoad(req)
	case OpList:
		return s.handleList(req)
	default:
		return errorResponse(req, fmt.Sprintf("unknown op %q", req.Op))
	}
}

func (s *Server) handleGenerate(req *Request) *Response {
	t, err := s.themes.Resolve(req.Theme)
	if err != nil {
		return errorResponse(req, err.Error())
	}
	if max := s.cfg.Generate.MaxSide; max > 0 && (req.Width > max || req.Height > max) {
		return errorResponse(req, fmt.Sprintf("requested size exceeds limit of %d", max))
	}

	lay, report := zone.Generate(t, req.Width, req.Height, req.Seed)
	logger.Info("zone generated",
		"theme", report.Theme,
		"seed", report.Seed,
		"size", fmt.Sprintf("%dx%d", report.Width, report.Height),
		"degraded", report.Degraded())

	resp := okResponse(req)
	resp.Report = report
	resp.Tiles = lay.Tiles.Render()
	resp.Terrain = terrainSpots(lay)
	return resp
}

func (s *Server) handleThemes(req *Request) *Response {
	resp := okResponse(req)
	resp.Themes = s.themes.Names()
	return resp
}

func (s *Server) handleSave(req *Request) *Response {
	if s.zones == nil {
		return errorResponse(req, "persistence is not configured")
	}
	if req.Name == "" {
		return errorResponse(req, "save requires a name")
	}

	t, err := s.themes.Resolve(req.Theme)
	if err != nil {
		return errorResponse(req, err.Error())
	}
	lay, report := zone.Generate(t, req.Width, req.Height, req.Seed)
	if _, err := s.zones.SaveZone(req.Name, lay, report); err != nil {
		return errorResponse(req, err.Error())
	}

	resp := okResponse(req)
	resp.Report = report
	return resp
}

func (s *Server) handleLoad(req *Request) *Response {
	if s.zones == nil {
		return errorResponse(req, "persistence is not configured")
	}
	lay, report, err := s.zones.LoadZone(req.Name)
	if err != nil {
		return errorResponse(req, err.Error())
	}

	resp := okResponse(req)
	resp.Report = report
	resp.Tiles = lay.Tiles.Render()
	resp.Terrain = terrainSpots(lay)
	return resp
}

func (s *Server) handleList(req *Request) *Response {
	if s.zones == nil {
		return errorResponse(req, "persistence is not configured")
	}
	records, err := s.zones.ListZones()
	if err != nil {
		return errorResponse(req, err.Error())
	}

	resp := okResponse(req)
	for _, rec := range records {
		resp.Zones = append(resp.Zones, ZoneSummary{
			Name:        rec.Name,
			Theme:       rec.Theme,
			Seed:        rec.Seed,
			Width:       rec.Width,
			Height:      rec.Height,
			Fingerprint: rec.Fingerprint,
		})
	}
	return resp
}
