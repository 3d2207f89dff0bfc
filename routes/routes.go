package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Infinite-Leo/CollectiQ/config"
	"github.com/Infinite-Leo/CollectiQ/controllers"
	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/models"
	"github.com/Infinite-Leo/CollectiQ/store"
)

// Setup wires the whole API. Role requirements are declared inline per route
// so this file doubles as the permission table.
func Setup(r *gin.Engine, s store.Store, cfg *config.Config) {
	authCtl := controllers.NewAuthController(s, []byte(cfg.JWTSecret))
	clubCtl := controllers.NewClubController(s)
	eventCtl := controllers.NewEventController(s)
	donationCtl := controllers.NewDonationController(s)
	donorCtl := controllers.NewDonorController(s)
	houseCtl := controllers.NewHouseController(s)
	dashCtl := controllers.NewDashboardController(s)
	fraudCtl := controllers.NewFraudController(s)
	auditCtl := controllers.NewAuditController(s)

	presSec := middlewares.RequireRoles(models.RolePresident, models.RoleSecretary)
	presSecColl := middlewares.RequireRoles(models.RolePresident, models.RoleSecretary, models.RoleCollector)
	presOnly := middlewares.RequireRoles(models.RolePresident)
	presCashier := middlewares.RequireRoles(models.RolePresident, models.RoleCashier)

	api := r.Group("/api")

	// Unauthenticated surface.
	api.GET("/health", controllers.Health)
	api.POST("/auth/login", authCtl.Login)

	// Everything below requires an identity (or the dev bypass).
	auth := api.Group("/", middlewares.Auth([]byte(cfg.JWTSecret), cfg.Production()))
	{
		clubs := auth.Group("/clubs")
		{
			clubs.GET("", clubCtl.Get)
			clubs.PATCH("", presOnly, clubCtl.Update)
		}

		events := auth.Group("/events")
		{
			events.GET("", eventCtl.List)
			events.POST("", presSec, eventCtl.Create)
			events.PATCH("/:id", presSec, eventCtl.Update)
		}

		donations := auth.Group("/donations")
		{
			donations.GET("", donationCtl.List)
			donations.GET("/:id", donationCtl.Get)
			donations.POST("", presSecColl, donationCtl.Create)
			donations.POST("/:id/void", presOnly, donationCtl.Void)
		}

		donors := auth.Group("/donors")
		{
			donors.GET("", donorCtl.Search)
			donors.POST("", presSecColl, donorCtl.Create)
		}

		houses := auth.Group("/houses")
		{
			houses.GET("", houseCtl.List)
			houses.POST("", presSecColl, houseCtl.Create)
			houses.POST("/bulk", presSec, houseCtl.BulkCreate)
			houses.PATCH("/:id", presSec, houseCtl.Update)
		}

		dashboard := auth.Group("/dashboard")
		{
			dashboard.GET("/summary", dashCtl.Summary)
			dashboard.GET("/collector-stats", dashCtl.CollectorStats)
			dashboard.GET("/payment-split", dashCtl.PaymentSplit)
			dashboard.GET("/trend", dashCtl.Trend)
		}

		fraud := auth.Group("/fraud")
		{
			fraud.GET("", presCashier, fraudCtl.List)
			fraud.PATCH("/:id", presOnly, fraudCtl.Resolve)
		}

		auth.GET("/audit", presSec, auditCtl.List)
	}
}
