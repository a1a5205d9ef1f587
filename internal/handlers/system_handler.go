package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/visitpazar/api/internal/config"
)

// StoreDiagnostics is what the connectivity check needs from the store.
type StoreDiagnostics interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "VisitPazar Backend is running"})
	}
}

// TestDatabase reports storage connectivity with the same string-flag fields
// the frontend already consumes.
func TestDatabase(st StoreDiagnostics, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      envFlag(cfg.DatabaseURL != ""),
			"database_name":     envFlag(cfg.DatabaseName != ""),
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if st != nil {
			response["database"] = "✅ Available"
			if err := st.Ping(c.Request.Context()); err != nil {
				response["database"] = "❌ Error: " + truncateMessage(err.Error(), 80)
			} else if names, err := st.CollectionNames(c.Request.Context()); err != nil {
				response["database"] = "⚠️ Connected but Error: " + truncateMessage(err.Error(), 80)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
				response["connection_status"] = "Connected"
				response["database"] = "✅ Connected & Working"
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

// Monetization returns the static revenue-stream overview.
func Monetization() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"streams": []gin.H{
				{"name": "Istaknuta mesta (sponzorisano)", "range_eur_per_month": "50-100", "example": "40 partnera => ~2.000€/mes"},
				{"name": "Provizija od rezervacija", "percent": 10},
				{"name": "Premium vodiči i AR ture", "price_eur": "1-3 po sadržaju"},
				{"name": "Sponzorisani događaji", "note": "Festivali, gradski projekti"},
			},
		})
	}
}

func envFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncateMessage counts characters, not bytes, so a cut never splits a rune.
func truncateMessage(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
