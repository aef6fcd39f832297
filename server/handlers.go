package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/jupark12/job-dashboard/queue"
	"github.com/jupark12/job-dashboard/stats"
	"github.com/jupark12/job-dashboard/view"
)

// Exception is the body of an error response
type Exception struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Exception{Status: status, Message: message})
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/", s.handleDashboard)
	r.GET("/cards", s.handleCards)
	r.POST("/reload", s.handleReloadForm)

	api := r.Group("/api")
	api.GET("/jobs", s.handleJobs)
	api.GET("/jobs/:id", s.handleJobDetails)
	api.GET("/stats", s.handleStats)
	api.GET("/chart", s.handleChart)
	api.GET("/notifications", s.handleNotifications)
	api.POST("/reload", s.handleReload)

	r.GET("/ws", s.handleWebSocket)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

// handleJobs returns one page of the filtered job list
func (s *Server) handleJobs(c *gin.Context) {
	state, err := view.ParseViewState(c.Request.URL.Query(), view.LayoutTable)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, view.Apply(s.queue.Snapshot().Jobs, state))
}

// handleJobDetails returns a single job
func (s *Server) handleJobDetails(c *gin.Context) {
	job, err := s.queue.GetJob(c.Param("id"))
	if err != nil {
		if errors.Is(err, queue.ErrJobNotFound) {
			fail(c, http.StatusNotFound, "Job not found")
			return
		}
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "Failed to get job")
		return
	}

	c.JSON(http.StatusOK, job)
}

type statsResponse struct {
	stats.Summary
	Loading  bool   `json:"loading"`
	LoadID   string `json:"loadId,omitempty"`
	LoadedAt string `json:"loadedAt,omitempty"`
}

// handleStats returns the summary widgets of the working set
func (s *Server) handleStats(c *gin.Context) {
	snap := s.queue.Snapshot()

	resp := statsResponse{
		Summary: stats.Summarize(snap.Jobs, s.now()),
		Loading: s.queue.IsLoading(),
		LoadID:  snap.LoadID,
	}
	if !snap.LoadedAt.IsZero() {
		resp.LoadedAt = snap.LoadedAt.UTC().Format(http.TimeFormat)
	}

	c.JSON(http.StatusOK, resp)
}

// handleChart returns the activity series only
func (s *Server) handleChart(c *gin.Context) {
	c.JSON(http.StatusOK, stats.ActivitySeries(s.queue.Snapshot().Jobs, s.now()))
}

func (s *Server) handleNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, s.recentNotifications())
}

// handleReload starts a new load of the working set
func (s *Server) handleReload(c *gin.Context) {
	loadID := s.worker.Reload(s.baseContext())
	c.JSON(http.StatusAccepted, gin.H{"loadId": loadID})
}

func (s *Server) handleReloadForm(c *gin.Context) {
	s.worker.Reload(s.baseContext())

	target := c.PostForm("return_to")
	if target == "" || target[0] != '/' || (len(target) > 1 && target[1] == '/') {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.WithError(err).Warn("failed to upgrade to websocket")
		return
	}

	// Send the current load state before registering for broadcasts
	initial, err := json.Marshal(map[string]any{
		"type":    "status",
		"loading": s.queue.IsLoading(),
		"jobs":    s.queue.Len(),
	})
	if err == nil {
		if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
			conn.Close()
			return
		}
	}

	s.wsManager.RegisterClient(conn)

	go func() {
		for {
			// Client messages are ignored; a read error means the client left
			if _, _, err := conn.ReadMessage(); err != nil {
				s.wsManager.UnregisterClient(conn)
				return
			}
		}
	}()
}
