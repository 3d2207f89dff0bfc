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

type DonationController struct {
	store store.Store
}

func NewDonationController(s store.Store) *DonationController {
	return &DonationController{store: s}
}

func (ctl *DonationController) List(c *gin.Context) {
	f := store.DonationFilter{
		EventID:       uuidQuery(c, "event_id"),
		PaymentStatus: c.Query("payment_status"),
		PaymentMode:   c.Query("payment_mode"),
		CollectorID:   uuidQuery(c, "collector_id"),
		Page:          getInt(c, "page", 1),
		Limit:         getInt(c, "limit", 50),
	}

	donations, total, err := ctl.store.Donations(c.Request.Context(), middlewares.ClubID(c), f)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Paged(c, donations, total, f.Page, f.Limit)
}

func (ctl *DonationController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, middlewares.BadRequest("invalid donation id"))
		return
	}
	d, err := ctl.store.DonationByID(c.Request.Context(), middlewares.ClubID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Data(c, http.StatusOK, d)
}

type donationCreateInput struct {
	EventID        *uuid.UUID      `json:"event_id,omitempty"`
	DonorID        *uuid.UUID      `json:"donor_id,omitempty"`
	ZoneID         *uuid.UUID      `json:"zone_id,omitempty"`
	HouseID        *uuid.UUID      `json:"house_id,omitempty"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	PaymentMode    string          `json:"payment_mode" binding:"omitempty,oneof=cash upi bank_transfer cheque"`
	PaymentStatus  string          `json:"payment_status" binding:"omitempty,oneof=paid due"`
	IdempotencyKey *string         `json:"idempotency_key,omitempty"`
	Notes          string          `json:"notes"`
	CollectionLat  *float64        `json:"collection_lat,omitempty"`
	CollectionLng  *float64        `json:"collection_lng,omitempty"`
	DeviceID       string          `json:"device_id"`
}

// Create records a donation: resolves the event (explicit or the club's
// active one), draws the next receipt number, persists the row stamped with
// the authenticated collector, and marks the house collected — all in one
// transaction on the Postgres store.
func (ctl *DonationController) Create(c *gin.Context) {
	var in donationCreateInput
	if !bindJSON(c, &in) {
		return
	}
	if !in.Amount.IsPositive() {
		fail(c, middlewares.BadRequest("amount must be positive"))
		return
	}
	if in.PaymentMode == "" {
		in.PaymentMode = models.ModeCash
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = models.StatusPaid
	}

	donation, err := ctl.store.RecordDonation(c.Request.Context(), middlewares.ClubID(c), middlewares.UserID(c), store.DonationInput{
		EventID:        in.EventID,
		DonorID:        in.DonorID,
		ZoneID:         in.ZoneID,
		HouseID:        in.HouseID,
		Amount:         in.Amount,
		PaymentMode:    in.PaymentMode,
		PaymentStatus:  in.PaymentStatus,
		IdempotencyKey: in.IdempotencyKey,
		Notes:          in.Notes,
		CollectionLat:  in.CollectionLat,
		CollectionLng:  in.CollectionLng,
		DeviceID:       in.DeviceID,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":           donation,
		"receipt_number": donation.ReceiptNumber,
	})
}

type voidInput struct {
	Reason string `json:"reason"`
}

// Void inserts an adjustment record referencing the donation. The donation
// row itself keeps its original amount and receipt number.
func (ctl *DonationController) Void(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, middlewares.BadRequest("invalid donation id"))
		return
	}

	var in voidInput
	_ = c.ShouldBindJSON(&in)
	if in.Reason == "" {
		in.Reason = "Voided by president"
	}

	adj, err := ctl.store.VoidDonation(c.Request.Context(), middlewares.ClubID(c), id, middlewares.UserID(c), in.Reason)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    adj,
		"message": "Donation voided via adjustment record",
	})
}
