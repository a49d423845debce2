package usecase

import (
	"context"
	"math"
	"time"

	"katana_store/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderEventPublisher is notified after an order has been persisted.
// Implementations must be best-effort: checkout never fails on a publish.
type OrderEventPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order)
}

type CheckoutUseCase interface {
	Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.Order, error)
}

type checkoutUseCase struct {
	katanaRepo domain.KatanaRepository
	orderRepo  domain.OrderRepository
	publisher  OrderEventPublisher
	log        *logrus.Logger
}

func NewCheckoutUseCase(katanaRepo domain.KatanaRepository, orderRepo domain.OrderRepository, publisher OrderEventPublisher, logger *logrus.Logger) CheckoutUseCase {
	return &checkoutUseCase{
		katanaRepo: katanaRepo,
		orderRepo:  orderRepo,
		publisher:  publisher,
		log:        logger,
	}
}

// Checkout resolves every cart line against one batched catalog lookup,
// computes the order total and persists the order. The order is either fully
// constructed or not created at all: the first cart line (in submission
// order) whose product id does not resolve fails the whole operation before
// anything is written.
func (uc *checkoutUseCase) Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, &domain.ValidationError{Reason: "order must contain at least one item"}
	}

	// Collect the distinct id set for the batched lookup. Ids that do not
	// parse as ObjectIDs stay out of the set and surface below as
	// unresolved, in line order.
	seen := make(map[string]struct{}, len(req.Items))
	ids := make([]primitive.ObjectID, 0, len(req.Items))
	for _, item := range req.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}

		id, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			uc.log.Warnf("Use Case: Cart references unparsable product id %q", item.ProductID)
			continue
		}
		ids = append(ids, id)
	}

	katanas, err := uc.katanaRepo.FindKatanasByIDs(ctx, ids)
	if err != nil {
		uc.log.Errorf("Use Case: Batched katana lookup failed: %v", err)
		return nil, err
	}

	katanaByID := make(map[string]*domain.Katana, len(katanas))
	for i := range katanas {
		katanaByID[katanas[i].ID.Hex()] = &katanas[i]
	}

	// Duplicate ids across lines resolve independently, no merging.
	var total float64
	orderItems := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		katana, ok := katanaByID[item.ProductID]
		if !ok {
			uc.log.Warnf("Use Case: Checkout references unknown product %s", item.ProductID)
			return nil, &domain.ProductNotFoundError{ProductID: item.ProductID}
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		total += katana.Price * float64(quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      katana.Name,
			Price:     katana.Price,
			Quantity:  quantity,
		})
	}

	now := time.Now().UTC()
	order := &domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Address:       req.Address,
		Items:         orderItems,
		Total:         math.Round(total*100) / 100,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := uc.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create order for %s: %v", req.CustomerEmail, err)
		return nil, err
	}

	if uc.publisher != nil {
		uc.publisher.OrderCreated(ctx, created)
	}

	uc.log.Infof("Use Case: Order %s created for %s (total %.2f, %d items)", created.ID.Hex(), created.CustomerEmail, created.Total, len(created.Items))
	return created, nil
}
