package server

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"strings"

	apierrors "github.com/SirClappington/competitor-watch/internal/errors"
	"github.com/SirClappington/competitor-watch/internal/models"
	"github.com/SirClappington/competitor-watch/internal/services"
	"github.com/SirClappington/competitor-watch/internal/views"
	"github.com/gin-gonic/gin"
)

// Server serves the competitor pages and the fragment endpoints behind them.
type Server struct {
	competitors *services.CompetitorService
	scans       *services.ScanService
	api         services.CompetitorAPI
	logger      *log.Logger
}

func New(api services.CompetitorAPI, streamer services.ScanStreamer, logger *log.Logger) *Server {
	return &Server{
		competitors: services.NewCompetitorService(api, logger),
		scans:       services.NewScanService(streamer, logger),
		api:         api,
		logger:      logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", s.handleIndex)
	r.GET("/scan-result/:id", s.handleScanPage)
	r.GET("/scan-result/:id/events", s.handleScanEvents)

	f := r.Group("/fragments")
	f.GET("/competitors", s.handleRefresh)
	f.POST("/competitors", s.handleAdd)
	f.POST("/competitors/:id/delete", s.handleDelete)
	f.POST("/suggestions", s.handleSuggest)
	f.POST("/suggestions/add", s.handleAddSuggestion)

	return r
}

func (s *Server) handleError(c *gin.Context, err error) {
	apiErr := apierrors.AsAPIError(err)
	if apiErr.Type == apierrors.ErrorTypeInternal || apiErr.Type == apierrors.ErrorTypeExternal {
		s.logger.Printf("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(apierrors.StatusCode(err), apiErr)
}

func competitorID(c *gin.Context) (models.CompetitorID, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", apierrors.NewValidationError("competitor id is required")
	}
	return models.CompetitorID(id), nil
}

func (s *Server) handleIndex(c *gin.Context) {
	view := views.NewManagerView()
	// The list area stays empty when the first fetch fails.
	s.competitors.Refresh(c.Request.Context(), view)
	if err := view.Err(); err != nil {
		s.handleError(c, err)
		return
	}

	var list template.HTML
	if f := view.Fragments(); f.Competitors != nil {
		list = *f.Competitors
	}

	var buf bytes.Buffer
	if err := views.IndexPage(&buf, list); err != nil {
		s.handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) writeFragments(c *gin.Context, view *views.ManagerView) {
	if err := view.Err(); err != nil {
		s.handleError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, view.Fragments())
}

func (s *Server) handleRefresh(c *gin.Context) {
	view := views.NewManagerView()
	if err := s.competitors.Refresh(c.Request.Context(), view); err != nil {
		s.handleError(c, err)
		return
	}
	s.writeFragments(c, view)
}

func (s *Server) handleAdd(c *gin.Context) {
	view := views.NewManagerView()
	if !s.competitors.Add(c.Request.Context(), view, c.PostForm("url")) {
		c.Status(http.StatusNoContent)
		return
	}
	s.writeFragments(c, view)
}

func (s *Server) handleDelete(c *gin.Context) {
	id, err := competitorID(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	view := views.NewManagerView()
	// The browser asks for confirmation before posting.
	s.competitors.Delete(c.Request.Context(), view, id, services.AlwaysConfirm)
	s.writeFragments(c, view)
}

func (s *Server) handleSuggest(c *gin.Context) {
	view := views.NewManagerView()
	if !s.competitors.Suggest(c.Request.Context(), view, c.PostForm("url")) {
		c.Status(http.StatusNoContent)
		return
	}
	s.writeFragments(c, view)
}

func (s *Server) handleAddSuggestion(c *gin.Context) {
	suggestionURL := strings.TrimSpace(c.PostForm("url"))
	if suggestionURL == "" {
		s.handleError(c, apierrors.NewValidationError("suggestion url is required"))
		return
	}

	view := views.NewManagerView()
	s.competitors.AddSuggestion(c.Request.Context(), view, suggestionURL)
	s.writeFragments(c, view)
}

func (s *Server) handleScanPage(c *gin.Context) {
	id, err := competitorID(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	competitors, err := s.api.ListCompetitors(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	competitor, ok := models.FindCompetitor(competitors, id)
	if !ok {
		c.String(http.StatusNotFound, "Competitor not found.")
		return
	}

	var buf bytes.Buffer
	if err := views.ScanPage(&buf, competitor); err != nil {
		s.handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// handleScanEvents relays the backend scan stream as rendered page events.
// The response always ends with a close event so the page does not reconnect
// and restart the scan.
func (s *Server) handleScanEvents(c *gin.Context) {
	id, err := competitorID(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	view := views.NewScanStreamView(func(event, data string) {
		c.SSEvent(event, data)
		c.Writer.Flush()
	})

	if _, err := s.scans.Run(c.Request.Context(), id, view); err != nil {
		s.logger.Printf("Scan viewer for competitor %s disconnected", id)
		return
	}
	if err := view.Err(); err != nil {
		s.logger.Printf("Error rendering scan events for competitor %s: %v", id, err)
	}
	view.Close()
}
