package routes

import (
	"log"
	"net/http"
	"strconv"

	_ "filtros_store/docs" // This will be auto-generated
	"filtros_store/internal/adapter/http/handlers"
	repository2 "filtros_store/internal/adapter/persistence/repository"
	"filtros_store/internal/infrastructure/config"
	"filtros_store/internal/infrastructure/database"
	"filtros_store/internal/infrastructure/payments"
	"filtros_store/internal/usecase"

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
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid payment configuration: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentRecordDynamoRepository(ddb)

	gateway, err := payments.NewMercadoPagoGateway(cfg)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	builder := usecase.PreferenceBuilder{
		FrontendBaseURL: cfg.FrontendBaseURL,
		BackendBaseURL:  cfg.BackendBaseURL,
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, paymentRepo, gateway, builder)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, orderHandler, paymentHandler, webhookHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
