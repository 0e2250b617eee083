package api

import (
	"net/http"
	"strconv"

	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
	"github.com/bookhavenapp/bookhaven-server/internal/search"
)

// handleSearch runs a full text search over the catalog.
// Query params: q, category, min_year, max_year, limit, offset.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := search.DefaultSearchParams()
	params.Query = q.Get("q")
	params.CategoryID = q.Get("category")

	if v := q.Get("min_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "min_year must be a number", s.logger)
			return
		}
		params.MinYear = year
	}
	if v := q.Get("max_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "max_year must be a number", s.logger)
			return
		}
		params.MaxYear = year
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > 100 {
			response.BadRequest(w, "limit must be between 1 and 100", s.logger)
			return
		}
		params.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			response.BadRequest(w, "offset must be a non-negative number", s.logger)
			return
		}
		params.Offset = offset
	}

	result, err := s.services.Search.Search(r.Context(), params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}
