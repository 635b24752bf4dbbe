package routes

import (
	"locaequip/internal/adapter/http/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth         = "/auth"
	PathClients      = "/clients"
	PathEquipments   = "/equipments"
	PathBudgets      = "/budgets"
	PathRentals      = "/rentals"
	PathAvailability = "/availability"
	PathAgenda       = "/agenda"
	PathReports      = "/reports"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}

func addRentalRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	equipmentHandler *handlers.EquipmentHandler,
	budgetHandler *handlers.BudgetHandler,
	rentalHandler *handlers.RentalHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	agendaHandler *handlers.AgendaHandler,
	reportHandler *handlers.ReportHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.POST("", clientHandler.CreateClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	equipments := rg.Group(PathEquipments)
	{
		equipments.GET("", equipmentHandler.ListEquipments)
		equipments.GET("/:id", equipmentHandler.GetEquipment)
		equipments.POST("", equipmentHandler.CreateEquipment)
		equipments.PUT("/:id", equipmentHandler.UpdateEquipment)
		equipments.DELETE("/:id", equipmentHandler.DeleteEquipment)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.PUT("/:id", budgetHandler.UpdateBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
		budgets.PATCH("/:id/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/:id/reject", budgetHandler.RejectBudget)
	}

	rentals := rg.Group(PathRentals)
	{
		rentals.GET("", rentalHandler.ListRentals)
		rentals.GET("/:id", rentalHandler.GetRental)
		rentals.POST("", rentalHandler.CreateRental)
		rentals.PUT("/:id", rentalHandler.UpdateRental)
		rentals.DELETE("/:id", rentalHandler.DeleteRental)
	}

	availability := rg.Group(PathAvailability)
	{
		availability.POST("/check", availabilityHandler.CheckAvailability)
		availability.POST("/check-batch", availabilityHandler.CheckBatchAvailability)
	}

	agenda := rg.Group(PathAgenda)
	{
		agenda.GET("", agendaHandler.ListEvents)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("", reportHandler.GetReport)
		reports.GET("/dashboard", reportHandler.GetDashboard)
	}
}
