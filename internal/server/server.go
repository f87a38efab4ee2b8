// Package server exposes path searches and step-by-step sessions over HTTP.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/config"
)

var (
	errGridTooLarge    = errors.New("grid exceeds maximum cell count")
	errTooManySessions = errors.New("too many open sessions")
)

// Server holds the live stepper sessions and the limits they are created under.
type Server struct {
	cfg    config.Config
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*gridastar.Stepper
}

// New creates a Server. A nil logger means slog.Default().
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[uuid.UUID]*gridastar.Stepper),
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	v1.POST("/path", s.handlePath)
	v1.POST("/sessions", s.handleCreateSession)
	v1.POST("/sessions/:id/step", s.handleStep)
	v1.DELETE("/sessions/:id", s.handleDeleteSession)
	return router
}

// Run serves on cfg.Addr until the listener fails.
func (s *Server) Run() error {
	gin.SetMode(s.cfg.GinMode)
	s.logger.Info("starting gridastar server", slog.String("address", s.cfg.Addr))
	return s.Router().Run(s.cfg.Addr)
}

func (s *Server) searchOptions() []gridastar.Option {
	opts := []gridastar.Option{gridastar.WithLogger(s.logger)}
	if s.cfg.MaxExpansions > 0 {
		opts = append(opts, gridastar.WithMaxExpansions(s.cfg.MaxExpansions))
	}
	return opts
}

func (s *Server) handlePath(c *gin.Context) {
	req, grid, ok := s.bindSearch(c)
	if !ok {
		return
	}
	res, err := gridastar.Search(c.Request.Context(), grid, req.Start.position(), req.Goal.position(), s.searchOptions()...)
	if err != nil {
		s.respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPathResponse(res))
}

func (s *Server) handleCreateSession(c *gin.Context) {
	req, grid, ok := s.bindSearch(c)
	if !ok {
		return
	}
	stepper, err := gridastar.NewStepper(grid, req.Start.position(), req.Goal.position(), s.searchOptions()...)
	if err != nil {
		s.respondSearchError(c, err)
		return
	}

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		c.JSON(http.StatusTooManyRequests, errorResponse{Error: errTooManySessions.Error()})
		return
	}
	id := uuid.New()
	s.sessions[id] = stepper
	s.mu.Unlock()

	s.logger.Debug("session created", slog.String("session_id", id.String()))
	c.JSON(http.StatusCreated, sessionResponse{ID: id.String(), Rows: grid.Rows(), Cols: grid.Cols()})
}

func (s *Server) handleStep(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	// Steps of one session are serialized by the server lock; a Stepper is not goroutine safe.
	s.mu.Lock()
	defer s.mu.Unlock()
	stepper, found := s.sessions[id]
	if !found {
		c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}
	snap, err := stepper.Step()
	// A finished or exhausted search cannot advance again; free its slot.
	if err != nil || snap.Done {
		delete(s.sessions, id)
		s.logger.Debug("session closed", slog.String("session_id", id.String()), slog.Bool("found", snap.Found))
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	_, found := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !found {
		c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// bindSearch decodes and validates a search request, writing the error response itself.
func (s *Server) bindSearch(c *gin.Context) (searchRequest, gridastar.Grid, bool) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return req, nil, false
	}
	if s.cfg.MaxCells > 0 && cellCount(req.Grid) > s.cfg.MaxCells {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: errGridTooLarge.Error()})
		return req, nil, false
	}
	grid, err := gridastar.ParseGrid(req.Grid...)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return req, nil, false
	}
	return req, grid, true
}

func (s *Server) respondSearchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gridastar.ErrOutOfBounds), errors.Is(err, gridastar.ErrBudgetExhausted):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, gridastar.ErrRaggedGrid):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

// cellCount is the number of cells ParseGrid would allocate for rows.
func cellCount(rows []string) int {
	n := 0
	for _, row := range rows {
		n += utf8.RuneCountInString(row)
	}
	return n
}
