package routes

import (
	"log"
	"os"
	"strconv"

	_ "venuedesk/docs" // This will be auto-generated
	"venuedesk/internal/adapter/http/handlers"
	repository2 "venuedesk/internal/adapter/persistence/repository"
	"venuedesk/internal/infrastructure/database"
	"venuedesk/internal/infrastructure/directory"
	"venuedesk/internal/infrastructure/payments"
	"venuedesk/internal/usecase"
	"venuedesk/internal/usecase/interfaces"

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

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	blockRepo := repository2.NewCalendarBlockDynamoRepository(ddb)
	paymentRepo := repository2.NewDepositPaymentDynamoRepository(ddb)

	var clientDirectory interfaces.IClientDirectory
	if baseURL := os.Getenv("CLIENT_DIRECTORY_URL"); baseURL != "" {
		clientDirectory = directory.NewHTTPClientDirectory(baseURL)
	} else {
		log.Printf("Client directory not configured; bookings keep caller-supplied names")
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, blockRepo, clientDirectory)
	conflictUseCase := usecase.NewConflictUseCase(bookingRepo)
	blockUseCase := usecase.NewCalendarBlockUseCase(blockRepo)
	scheduleUseCase := usecase.NewScheduleViewUseCase(bookingRepo)
	reportUseCase := usecase.NewReportUseCase(bookingRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(bookingRepo)
	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, bookingRepo, paymentGateway)

	bookingHandler := handlers.NewBookingHandler(bookingUseCase, conflictUseCase)
	blockHandler := handlers.NewCalendarBlockHandler(blockUseCase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	paymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSchedulingRoutes(v1, bookingHandler, blockHandler, scheduleHandler)
	addAnalyticsRoutes(v1, reportHandler, dashboardHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
