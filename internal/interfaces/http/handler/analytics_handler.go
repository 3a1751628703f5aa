package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	app "retail_inventory/internal/application/analytics"
)

type AnalyticsHandler struct {
	svc *app.Service
}

func NewAnalyticsHandler(svc *app.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Revenue nhận start/end dạng RFC 3339, cả hai optional và inclusive.
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	var start, end *time.Time

	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC 3339"})
			return
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC 3339"})
			return
		}
		end = &t
	}

	revenue, err := h.svc.Revenue(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}

func (h *AnalyticsHandler) TopSellingProducts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit is invalid"})
			return
		}
		limit = v
	}

	top, err := h.svc.TopSellingProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, top)
}

func (h *AnalyticsHandler) CustomerAnalytics(c *gin.Context) {
	stats, err := h.svc.CustomerAnalytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
