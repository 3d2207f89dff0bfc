package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

type DashboardController struct {
	store store.Store
}

func NewDashboardController(s store.Store) *DashboardController {
	return &DashboardController{store: s}
}

// Summary feeds the KPI cards: total/today collection and house progress.
// Responds flat, not wrapped in {data}, matching what the dashboard consumes.
func (ctl *DashboardController) Summary(c *gin.Context) {
	sum, err := ctl.store.DashboardSummary(c.Request.Context(), middlewares.ClubID(c), uuidQuery(c, "event_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (ctl *DashboardController) CollectorStats(c *gin.Context) {
	stats, err := ctl.store.CollectorStats(c.Request.Context(), middlewares.ClubID(c), uuidQuery(c, "event_id"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, stats)
}

func (ctl *DashboardController) PaymentSplit(c *gin.Context) {
	rows, err := ctl.store.PaymentSplit(c.Request.Context(), middlewares.ClubID(c), uuidQuery(c, "event_id"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, rows)
}

func (ctl *DashboardController) Trend(c *gin.Context) {
	points, err := ctl.store.CollectionTrend(c.Request.Context(), middlewares.ClubID(c), uuidQuery(c, "event_id"), getInt(c, "days", 7))
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, points)
}
