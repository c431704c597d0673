package routes

import (
	"log"
	"os"
	"strconv"

	_ "klarna_checkout/docs" // This will be auto-generated
	"klarna_checkout/internal/adapter/http/handlers"
	repository2 "klarna_checkout/internal/adapter/persistence/repository"
	"klarna_checkout/internal/infrastructure/database"
	"klarna_checkout/internal/infrastructure/klarna"
	"klarna_checkout/internal/usecase"

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

	cartRepo := repository2.NewCartDynamoRepository(ddb)
	orderRepo := repository2.NewPurchaseOrderDynamoRepository(ddb)
	shippingRepo := repository2.NewShippingMethodDynamoRepository(ddb)
	paymentMethodRepo := repository2.NewPaymentMethodDynamoRepository(ddb)

	locale := getenvDefault("CHECKOUT_LOCALE", "en-US")
	marketID := getenvDefault("CHECKOUT_MARKET", "US")
	merchantBaseURL := getenvDefault("MERCHANT_BASE_URL", "http://localhost:8080")
	startPageURL := getenvDefault("START_PAGE_URL", "/")

	clientSource := klarna.NewClientSource(paymentMethodRepo, locale, marketID)

	checkoutUseCase := usecase.NewCheckoutUseCase(
		usecase.DefaultTotalsCalculator{},
		cartRepo,
		shippingRepo,
		clientSource,
		locale,
		merchantBaseURL,
	)
	confirmationUseCase := usecase.NewConfirmationUseCase(orderRepo, paymentMethodRepo, checkoutUseCase, locale)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	confirmationHandler := handlers.NewConfirmationHandler(confirmationUseCase, startPageURL)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, confirmationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
