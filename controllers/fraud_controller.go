package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

type FraudController struct {
	store store.Store
}

func NewFraudController(s store.Store) *FraudController {
	return &FraudController{store: s}
}

func (ctl *FraudController) List(c *gin.Context) {
	flags, err := ctl.store.FraudFlags(c.Request.Context(), middlewares.ClubID(c), store.FraudFilter{
		Status:   c.Query("status"),
		Severity: c.Query("severity"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, flags)
}

type fraudUpdateInput struct {
	Status          string `json:"status" binding:"required,oneof=investigating resolved dismissed"`
	ResolutionNotes string `json:"resolution_notes"`
}

// Resolve moves a flag through its lifecycle. Terminal resolutions record
// the resolver and timestamp; disallowed transitions are rejected.
func (ctl *FraudController) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, middlewares.BadRequest("invalid flag id"))
		return
	}

	var in fraudUpdateInput
	if !bindJSON(c, &in) {
		return
	}

	flag, err := ctl.store.ResolveFraudFlag(c.Request.Context(), middlewares.ClubID(c), id, middlewares.UserID(c), in.Status, in.ResolutionNotes)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, flag)
}
