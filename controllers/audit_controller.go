package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

type AuditController struct {
	store store.Store
}

func NewAuditController(s store.Store) *AuditController {
	return &AuditController{store: s}
}

func (ctl *AuditController) List(c *gin.Context) {
	f := store.AuditFilter{
		TableName: c.Query("table_name"),
		Action:    c.Query("action"),
		Page:      getInt(c, "page", 1),
		Limit:     getInt(c, "limit", 50),
	}

	logs, total, err := ctl.store.AuditLogs(c.Request.Context(), middlewares.ClubID(c), f)
	if err != nil {
		fail(c, err)
		return
	}
	utils.Paged(c, logs, total, f.Page, f.Limit)
}
