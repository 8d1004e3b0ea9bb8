package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"foodcourt/internal/domain"
)

// CheckoutService converts a user's volatile cart into a durable order.
// The order insert and the balance debit share one database
// transaction; the cart clear happens strictly after commit so a failed
// checkout never loses the cart.
type CheckoutService struct {
	catalog   CatalogRepository
	orders    OrderRepository
	cart      CartStore
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewCheckoutService(catalog CatalogRepository, orders OrderRepository, cart CartStore, publisher OrderPublisher, qr QRGenerator) *CheckoutService {
	return &CheckoutService{
		catalog:   catalog,
		orders:    orders,
		cart:      cart,
		publisher: publisher,
		qrEncoder: qr,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, userID int) error {
	locked, err := s.cart.AcquireCheckoutLock(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to acquire checkout lock: %w", err)
	}
	if !locked {
		return domain.ErrCheckoutInProgress
	}
	defer func() {
		if err := s.cart.ReleaseCheckoutLock(ctx, userID); err != nil {
			logrus.WithError(err).Warn("failed to release checkout lock")
		}
	}()

	cart, err := s.cart.ReadAll(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}
	if len(cart) == 0 {
		return domain.ErrEmptyCart
	}

	// A cart line whose dish was deleted from the catalog fails the
	// whole checkout; no line is silently dropped.
	items := make([]domain.OrderItem, 0, len(cart))
	lines := make([]decimal.Decimal, 0, len(cart))
	for dishID, quantity := range cart {
		dish, err := s.catalog.GetDish(dishID)
		if err != nil {
			return err
		}
		lineTotal, err := LineTotal(dish.Price, quantity)
		if err != nil {
			return err
		}
		lines = append(lines, lineTotal)
		items = append(items, domain.OrderItem{DishID: dishID, Quantity: quantity})
	}
	total := OrderTotal(lines)

	orderID, err := s.orders.PlaceOrder(ctx, userID, items, total)
	if err != nil {
		return err
	}

	// The order is durable from here on. Clearing the cart first keeps
	// the crash window between commit and clear as small as possible;
	// QR and event publishing are best effort.
	if err := s.cart.Clear(ctx, userID); err != nil {
		logrus.WithError(err).WithField("user_id", userID).
			Warn("order committed but cart clear failed; cart is stale")
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.orders.SaveQRCode(orderID, qr)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, domain.OrderEvent{
			Type:      "order_placed",
			OrderID:   orderID,
			UserID:    userID,
			Total:     total,
			Timestamp: time.Now(),
		}); err != nil {
			logrus.WithError(err).Warn("failed to publish order event")
		}
	}

	return nil
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
