package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/visitpazar/api/internal/apperr"
	"github.com/visitpazar/api/internal/models"
	"github.com/visitpazar/api/internal/services"
)

func CreateGuide(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var guide models.Guide
		if err := c.ShouldBindJSON(&guide); err != nil {
			writeError(c, apperr.BadRequest("invalid request body: "+err.Error()))
			return
		}
		id, err := cs.CreateGuide(c.Request.Context(), guide)
		if err != nil {
			writeError(c, err)
			return
		}
		created(c, id)
	}
}

func ListGuides(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		guides, err := cs.ListGuides(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, guides)
	}
}

func CreateEvent(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			writeError(c, apperr.BadRequest("invalid request body: "+err.Error()))
			return
		}
		id, err := cs.CreateEvent(c.Request.Context(), event)
		if err != nil {
			writeError(c, err)
			return
		}
		created(c, id)
	}
}

func ListEvents(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := cs.ListEvents(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func CreateTour(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tour models.Tour
		if err := c.ShouldBindJSON(&tour); err != nil {
			writeError(c, apperr.BadRequest("invalid request body: "+err.Error()))
			return
		}
		id, err := cs.CreateTour(c.Request.Context(), tour)
		if err != nil {
			writeError(c, err)
			return
		}
		created(c, id)
	}
}

func ListTours(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tours, err := cs.ListTours(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, tours)
	}
}

func CreateBooking(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			writeError(c, apperr.BadRequest("invalid request body: "+err.Error()))
			return
		}
		id, err := cs.CreateBooking(c.Request.Context(), booking)
		if err != nil {
			writeError(c, err)
			return
		}
		created(c, id)
	}
}

func CreatePremium(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var content models.PremiumContent
		if err := c.ShouldBindJSON(&content); err != nil {
			writeError(c, apperr.BadRequest("invalid request body: "+err.Error()))
			return
		}
		id, err := cs.CreatePremium(c.Request.Context(), content)
		if err != nil {
			writeError(c, err)
			return
		}
		created(c, id)
	}
}

func ListPremium(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		contents, err := cs.ListPremium(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contents)
	}
}
