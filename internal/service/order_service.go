package service

import (
	"github.com/shopspring/decimal"

	"foodcourt/internal/domain"
)

const recentOrderLimit = 10

// OrderSummary is the order-history payload: the last orders plus their
// count and summed value.
type OrderSummary struct {
	TotalCount int             `json:"total_count"`
	TotalSum   decimal.Decimal `json:"total_sum"`
	LastOrders []domain.Order  `json:"last_orders"`
}

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, qrEncoder: qr}
}

func (s *OrderService) ListRecent(userID int) (*OrderSummary, error) {
	orders, err := s.repo.ListRecentOrders(userID, recentOrderLimit)
	if err != nil {
		return nil, err
	}

	totalSum := decimal.Zero
	for _, order := range orders {
		totalSum = totalSum.Add(order.TotalPrice)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return &OrderSummary{
		TotalCount: len(orders),
		TotalSum:   totalSum,
		LastOrders: orders,
	}, nil
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
