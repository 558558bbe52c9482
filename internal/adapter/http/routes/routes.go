package routes

import (
	"log"
	"strconv"

	_ "fieldhours/docs" // swag-generated swagger definition
	"fieldhours/internal/adapter/http/handlers"
	repository "fieldhours/internal/adapter/persistence/repository"
	"fieldhours/internal/infrastructure/database"
	"fieldhours/internal/usecase"

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
	ddb := database.ConnectDynamoDB()

	entryRepo := repository.NewWorkEntryDynamoRepository(ddb)
	rateRepo := repository.NewRateAgreementDynamoRepository(ddb)
	travelRepo := repository.NewTravelAgreementDynamoRepository(ddb)

	entryUseCase := usecase.NewWorkEntryUseCase(entryRepo)
	reconciliationUseCase := usecase.NewReconciliationUseCase(entryRepo)
	summaryUseCase := usecase.NewSummaryUseCase(entryRepo, rateRepo, travelRepo)
	rateUseCase := usecase.NewRateUseCase(rateRepo, travelRepo)

	entryHandler := handlers.NewWorkEntryHandler(entryUseCase)
	reconciliationHandler := handlers.NewReconciliationHandler(reconciliationUseCase)
	summaryHandler := handlers.NewSummaryHandler(summaryUseCase)
	rateHandler := handlers.NewRateHandler(rateUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTimesheetRoutes(v1, entryHandler, reconciliationHandler, summaryHandler, rateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
