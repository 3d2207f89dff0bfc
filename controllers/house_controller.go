package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/models"
	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

type HouseController struct {
	store store.Store
}

func NewHouseController(s store.Store) *HouseController {
	return &HouseController{store: s}
}

func (ctl *HouseController) List(c *gin.Context) {
	f := store.HouseFilter{
		EventID:     uuidQuery(c, "event_id"),
		ZoneID:      uuidQuery(c, "zone_id"),
		IsCollected: boolQuery(c, "is_collected"),
		Priority:    c.Query("priority"),
		Page:        getInt(c, "page", 1),
		Limit:       getInt(c, "limit", 100),
	}

	houses, total, err := ctl.store.Houses(c.Request.Context(), middlewares.ClubID(c), f)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Paged(c, houses, total, f.Page, f.Limit)
}

type houseInput struct {
	Address        string           `json:"address" binding:"required"`
	DonorName      string           `json:"donor_name"`
	Phone          string           `json:"phone"`
	EventID        *uuid.UUID       `json:"event_id,omitempty"`
	ZoneID         *uuid.UUID       `json:"zone_id,omitempty"`
	Priority       string           `json:"priority" binding:"omitempty,oneof=low normal high critical"`
	LastYearAmount *decimal.Decimal `json:"last_year_amount,omitempty"`
	Lat            *float64         `json:"lat,omitempty"`
	Lng            *float64         `json:"lng,omitempty"`
}

func (in *houseInput) toModel(clubID uuid.UUID) models.House {
	h := models.House{
		ClubID:    clubID,
		EventID:   in.EventID,
		ZoneID:    in.ZoneID,
		Address:   in.Address,
		DonorName: in.DonorName,
		Phone:     in.Phone,
		Priority:  in.Priority,
		Lat:       in.Lat,
		Lng:       in.Lng,
	}
	if h.Priority == "" {
		h.Priority = models.PriorityNormal
	}
	if in.LastYearAmount != nil {
		h.LastYearAmount = *in.LastYearAmount
	}
	return h
}

func (ctl *HouseController) Create(c *gin.Context) {
	var in houseInput
	if !bindJSON(c, &in) {
		return
	}

	house := in.toModel(middlewares.ClubID(c))
	if err := ctl.store.CreateHouse(c.Request.Context(), middlewares.UserID(c), &house); err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusCreated, house)
}

type bulkHousesInput struct {
	Houses []houseInput `json:"houses" binding:"required,min=1,dive"`
}

// BulkCreate imports houses in one batch, e.g. from a CSV upload parsed
// client-side.
func (ctl *HouseController) BulkCreate(c *gin.Context) {
	var in bulkHousesInput
	if !bindJSON(c, &in) {
		return
	}

	clubID := middlewares.ClubID(c)
	houses := make([]models.House, 0, len(in.Houses))
	for i := range in.Houses {
		houses = append(houses, in.Houses[i].toModel(clubID))
	}

	if err := ctl.store.CreateHouses(c.Request.Context(), middlewares.UserID(c), houses); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     houses,
		"imported": len(houses),
	})
}

type houseUpdateInput struct {
	Address        *string          `json:"address,omitempty"`
	DonorName      *string          `json:"donor_name,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	EventID        *uuid.UUID       `json:"event_id,omitempty"`
	ZoneID         *uuid.UUID       `json:"zone_id,omitempty"`
	Priority       *string          `json:"priority,omitempty" binding:"omitempty,oneof=low normal high critical"`
	IsCollected    *bool            `json:"is_collected,omitempty"`
	LastYearAmount *decimal.Decimal `json:"last_year_amount,omitempty"`
	Lat            *float64         `json:"lat,omitempty"`
	Lng            *float64         `json:"lng,omitempty"`
}

func (ctl *HouseController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, middlewares.BadRequest("invalid house id"))
		return
	}

	var in houseUpdateInput
	if !bindJSON(c, &in) {
		return
	}

	updates := map[string]any{}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.DonorName != nil {
		updates["donor_name"] = *in.DonorName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.EventID != nil {
		updates["event_id"] = in.EventID
	}
	if in.ZoneID != nil {
		updates["zone_id"] = in.ZoneID
	}
	if in.Priority != nil {
		updates["priority"] = *in.Priority
	}
	if in.IsCollected != nil {
		updates["is_collected"] = *in.IsCollected
	}
	if in.LastYearAmount != nil {
		updates["last_year_amount"] = *in.LastYearAmount
	}
	if in.Lat != nil {
		updates["lat"] = in.Lat
	}
	if in.Lng != nil {
		updates["lng"] = in.Lng
	}
	if len(updates) == 0 {
		fail(c, middlewares.BadRequest("nothing to update"))
		return
	}

	house, err := ctl.store.UpdateHouse(c.Request.Context(), middlewares.ClubID(c), id, updates)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, house)
}
