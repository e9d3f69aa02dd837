package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"casecraft/internal/domain"
	"casecraft/internal/gateway"
	"casecraft/internal/pricing"
	orderrepo "casecraft/internal/repository/order"
	"github.com/google/uuid"
)

// Currency for all gateway orders. The storefront quotes in paise and the
// gateway settles in INR.
const Currency = "INR"

// Service creates checkout sessions: one local order (the system of record)
// plus one gateway order correlated to it via notes metadata.
type Service struct {
	configs configurationRepo
	orders  orderRepo
	gateway gateway.Client
	logger  *log.Logger
}

type configurationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Configuration, error)
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	FindPending(ctx context.Context, userID, configurationID string) (*domain.Order, error)
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
}

func New(configs configurationRepo, orders orderRepo, gw gateway.Client, logger *log.Logger) *Service {
	return &Service{configs: configs, orders: orders, gateway: gw, logger: logger}
}

// Session carries the identifiers the payment widget needs.
type Session struct {
	OrderID        string `json:"orderId"`
	GatewayOrderID string `json:"gatewayOrderId"`
}

// CreateSession resolves the configuration, prices it, finds or creates the
// pending order for (user, configuration), and opens a gateway order for the
// stored amount. Nothing is considered paid until the webhook says so.
func (s *Service) CreateSession(ctx context.Context, userID, configID string, shippingAddressID *string) (*Session, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(configID) == "" {
		return nil, domain.Validationf("configId required")
	}

	cfg, err := s.configs.GetByID(ctx, configID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("configuration %s: %w", configID, domain.ErrNotFound)
		}
		return nil, err
	}

	price := pricing.Quote(cfg.Finish, cfg.Material)

	ord, err := s.findOrCreateOrder(ctx, userID, cfg.ID, price, shippingAddressID)
	if err != nil {
		return nil, err
	}

	// A reused order keeps its original amount: that is the price the buyer
	// was quoted when the intent was created.
	gwOrder, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderInput{
		AmountCents:  ord.AmountCents,
		Currency:     Currency,
		Receipt:      "rcp_" + uuid.NewString(),
		LocalOrderID: ord.ID,
	})
	if err != nil {
		// The local order stays unpaid and gateway-less; re-invoking checkout
		// reuses it via FindPending, so the failure is safe to surface.
		return nil, err
	}

	return &Session{OrderID: ord.ID, GatewayOrderID: gwOrder.ID}, nil
}

func (s *Service) findOrCreateOrder(ctx context.Context, userID, configID string, price int64, shippingAddressID *string) (*domain.Order, error) {
	existing, err := s.orders.FindPending(ctx, userID, configID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created, err := s.orders.Create(ctx, orderrepo.CreateInput{
		UserID:            userID,
		ConfigurationID:   configID,
		AmountCents:       price,
		ShippingAddressID: shippingAddressID,
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, err
	}

	// A concurrent checkout for the same pair won the insert; the partial
	// unique index guarantees exactly one pending row, so read theirs.
	s.logger.Printf("checkout race for user=%s config=%s, reusing winner", userID, configID)
	return s.orders.FindPending(ctx, userID, configID)
}

// GetOrder returns an order if the acting user owns it; otherwise not found.
func (s *Service) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUnauthenticated
	}
	ord, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return ord, nil
}
