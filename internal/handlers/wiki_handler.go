package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/visitpazar/api/internal/apperr"
	"github.com/visitpazar/api/internal/services"
	"github.com/visitpazar/api/internal/wiki"
)

const (
	searchDefaultLimit = 5
	searchMinLimit     = 1
	searchMaxLimit     = 10
)

// WikiSearcher is the search side of the wiki client.
type WikiSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]wiki.SearchResult, error)
}

func WikiSummary(fetcher services.SummaryFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := strings.TrimSpace(c.Query("title"))
		if title == "" {
			writeError(c, apperr.BadRequest("title query parameter is required"))
			return
		}
		c.JSON(http.StatusOK, fetcher.Summary(c.Request.Context(), title))
	}
}

func WikiSearch(searcher WikiSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("query"))
		if query == "" {
			writeError(c, apperr.BadRequest("query parameter is required"))
			return
		}

		limit := searchDefaultLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(c, apperr.BadRequest("limit must be an integer"))
				return
			}
			limit = n
		}
		if limit < searchMinLimit {
			limit = searchMinLimit
		}
		if limit > searchMaxLimit {
			limit = searchMaxLimit
		}

		results, err := searcher.Search(c.Request.Context(), query, limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}
