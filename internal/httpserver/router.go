package httpserver

import (
	"context"
	"log"
	"time"

	"casecraft/internal/domain"
	configrepo "casecraft/internal/repository/configuration"
	addrsvc "casecraft/internal/service/address"
	checkoutsvc "casecraft/internal/service/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps holds the services the router wires into handlers.
type Deps struct {
	AddressSvc  addressService
	CheckoutSvc checkoutService
	WebhookSvc  webhookService
	ConfigRepo  configurationRepo
	JWTSecret   string
	CORSOrigins []string
}

type addressService interface {
	List(ctx context.Context, userID string) ([]domain.Address, error)
	Create(ctx context.Context, userID string, in addrsvc.CreateInput) (*domain.Address, error)
	Get(ctx context.Context, id string) (*domain.Address, error)
	Update(ctx context.Context, actingUserID, id string, in addrsvc.UpdateInput) (*domain.Address, error)
	Delete(ctx context.Context, actingUserID, id string) (*domain.Address, error)
}

type checkoutService interface {
	CreateSession(ctx context.Context, userID, configID string, shippingAddressID *string) (*checkoutsvc.Session, error)
	GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

type webhookService interface {
	HandleEvent(ctx context.Context, rawBody []byte, signature string) error
}

type configurationRepo interface {
	Create(ctx context.Context, in configrepo.CreateInput) (*domain.Configuration, error)
	GetByID(ctx context.Context, id string) (*domain.Configuration, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if err := corsCfg.Validate(); err != nil {
		return nil, err
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/address", listAddressesHandler(deps.AddressSvc))
	router.POST("/address", createAddressHandler(deps.AddressSvc))
	router.GET("/address/:addressId", getAddressHandler(deps.AddressSvc))

	router.POST("/configurations", createConfigurationHandler(deps.ConfigRepo))
	router.GET("/configurations/:configId", getConfigurationHandler(deps.ConfigRepo))

	router.POST("/webhooks/payment", webhookHandler(deps.WebhookSvc, logger))

	authed := router.Group("", authRequired(deps.JWTSecret))
	authed.PUT("/address/:addressId", updateAddressHandler(deps.AddressSvc))
	authed.DELETE("/address/:addressId", deleteAddressHandler(deps.AddressSvc))
	authed.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
	authed.GET("/orders/:orderId", getOrderHandler(deps.CheckoutSvc))

	return router, nil
}
