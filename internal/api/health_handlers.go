package api

import (
	"net/http"
	"time"

	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
)

var startTime = time.Now()

// healthStatus is the /health payload.
type healthStatus struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	BooksIndexed  uint64 `json:"books_indexed"`
}

// handleHealthCheck reports liveness and basic index stats.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
	}

	count, err := s.services.Search.DocumentCount()
	if err != nil {
		status.Status = "degraded"
	} else {
		status.BooksIndexed = count
	}

	response.Success(w, status, s.logger)
}
