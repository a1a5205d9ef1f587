package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/visitpazar/api/internal/apperr"
	"github.com/visitpazar/api/internal/models"
	"github.com/visitpazar/api/internal/services"
)

func CreatePlace(ps *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var place models.Place
		if err := c.ShouldBindJSON(&place); err != nil {
			writeError(c, apperr.BadRequest("invalid request body: "+err.Error()))
			return
		}

		id, err := ps.Create(c.Request.Context(), place)
		if err != nil {
			writeError(c, err)
			return
		}
		created(c, id)
	}
}

func ListPlaces(ps *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		placeType := c.Query("type")

		var recommended *bool
		if raw := c.Query("recommended"); raw != "" {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(c, apperr.BadRequest("recommended must be a boolean"))
				return
			}
			recommended = &value
		}

		places, err := ps.List(c.Request.Context(), placeType, recommended)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, places)
	}
}

func ListRecommended(ps *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		places, err := ps.Recommended(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, places)
	}
}
