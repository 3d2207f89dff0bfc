package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

type ClubController struct {
	store store.Store
}

func NewClubController(s store.Store) *ClubController {
	return &ClubController{store: s}
}

// Get returns the caller's club profile.
func (ctl *ClubController) Get(c *gin.Context) {
	club, err := ctl.store.ClubByID(c.Request.Context(), middlewares.ClubID(c))
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, club)
}

type clubUpdateInput struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
}

// Update applies a partial profile change. President only (route table).
func (ctl *ClubController) Update(c *gin.Context) {
	var in clubUpdateInput
	if !bindJSON(c, &in) {
		return
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.LogoURL != nil {
		updates["logo_url"] = *in.LogoURL
	}
	if len(updates) == 0 {
		fail(c, middlewares.BadRequest("nothing to update"))
		return
	}

	club, err := ctl.store.UpdateClub(c.Request.Context(), middlewares.ClubID(c), updates)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, club)
}
