package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/models"
	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

type DonorController struct {
	store store.Store
}

func NewDonorController(s store.Store) *DonorController {
	return &DonorController{store: s}
}

// Search matches donors by name or phone substring, case-insensitive.
func (ctl *DonorController) Search(c *gin.Context) {
	donors, err := ctl.store.Donors(c.Request.Context(), middlewares.ClubID(c), c.Query("query"), getInt(c, "limit", 10))
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, donors)
}

type donorCreateInput struct {
	FullName string     `json:"full_name" binding:"required"`
	Phone    string     `json:"phone"`
	HouseID  *uuid.UUID `json:"house_id,omitempty"`
}

func (ctl *DonorController) Create(c *gin.Context) {
	var in donorCreateInput
	if !bindJSON(c, &in) {
		return
	}

	donor := models.Donor{
		ClubID:   middlewares.ClubID(c),
		FullName: in.FullName,
		Phone:    in.Phone,
		HouseID:  in.HouseID,
	}
	if err := ctl.store.CreateDonor(c.Request.Context(), middlewares.UserID(c), &donor); err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusCreated, donor)
}
