package routes

import (
	"log"
	_ "locaequip/docs" // This will be auto-generated
	"locaequip/internal/adapter/http/handlers"
	"locaequip/internal/adapter/http/middleware"
	repository2 "locaequip/internal/adapter/persistence/repository"
	"locaequip/internal/infrastructure/auth"
	"locaequip/internal/infrastructure/database"
	"locaequip/internal/infrastructure/notify"
	"locaequip/internal/scheduler"
	"locaequip/internal/usecase"
	"locaequip/pkg/logger"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	appLogger := logger.Must(logger.New())
	ddb := database.ConnectDynamoDB()

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	equipmentRepo := repository2.NewEquipmentDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	rentalRepo := repository2.NewRentalDynamoRepository(ddb)
	approvalRepo := repository2.NewApprovalDynamoRepository(ddb)

	availabilityCache := usecase.NewAvailabilityCache()
	notifier := notify.NewWebhookNotifier(logger.Named(appLogger, "notify"))

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	equipmentUseCase := usecase.NewEquipmentUseCase(equipmentRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, approvalRepo, availabilityCache, notifier, logger.Named(appLogger, "budget"))
	rentalUseCase := usecase.NewRentalUseCase(rentalRepo, availabilityCache, logger.Named(appLogger, "rental"))
	availabilityUseCase := usecase.NewAvailabilityUseCase(equipmentRepo, rentalRepo, availabilityCache)
	agendaUseCase := usecase.NewAgendaUseCase(rentalRepo)
	reportUseCase := usecase.NewReportUseCase(rentalRepo, budgetRepo)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	rentalHandler := handlers.NewRentalHandler(rentalUseCase)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUseCase)
	agendaHandler := handlers.NewAgendaHandler(agendaUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	authService, err := auth.NewService()
	if err != nil {
		log.Fatalf("Failed to configure authentication: %v", err.Error())
	}
	authHandler := handlers.NewAuthHandler(authService)

	statusScheduler := scheduler.New(rentalUseCase, logger.Named(appLogger, "scheduler"))
	if err := statusScheduler.Start(); err != nil {
		log.Fatalf("Failed to start the status scheduler: %v", err.Error())
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas protegidas
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(authService))
	addRentalRoutes(protected, clientHandler, equipmentHandler, budgetHandler, rentalHandler, availabilityHandler, agendaHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
