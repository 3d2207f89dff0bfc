package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/models"
	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

type EventController struct {
	store store.Store
}

func NewEventController(s store.Store) *EventController {
	return &EventController{store: s}
}

func (ctl *EventController) List(c *gin.Context) {
	events, err := ctl.store.Events(c.Request.Context(), middlewares.ClubID(c))
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, events)
}

type eventCreateInput struct {
	Name         string           `json:"name" binding:"required"`
	Code         string           `json:"code"`
	Description  string           `json:"description"`
	StartDate    time.Time        `json:"start_date" binding:"required"`
	EndDate      time.Time        `json:"end_date" binding:"required"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
}

func (ctl *EventController) Create(c *gin.Context) {
	var in eventCreateInput
	if !bindJSON(c, &in) {
		return
	}

	ev := models.Event{
		ClubID:      middlewares.ClubID(c),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      models.EventActive,
	}
	if in.TargetAmount != nil {
		ev.TargetAmount = *in.TargetAmount
	}

	if err := ctl.store.CreateEvent(c.Request.Context(), &ev); err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusCreated, ev)
}

type eventUpdateInput struct {
	Name         *string          `json:"name,omitempty"`
	Code         *string          `json:"code,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Status       *string          `json:"status,omitempty" binding:"omitempty,oneof=active upcoming completed archived"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
}

func (ctl *EventController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, middlewares.BadRequest("invalid event id"))
		return
	}

	var in eventUpdateInput
	if !bindJSON(c, &in) {
		return
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Code != nil {
		updates["code"] = *in.Code
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.StartDate != nil {
		updates["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		updates["end_date"] = *in.EndDate
	}
	if in.TargetAmount != nil {
		updates["target_amount"] = *in.TargetAmount
	}
	if len(updates) == 0 {
		fail(c, middlewares.BadRequest("nothing to update"))
		return
	}

	ev, err := ctl.store.UpdateEvent(c.Request.Context(), middlewares.ClubID(c), id, updates)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, ev)
}
