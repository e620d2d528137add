package services

import (
	"context"
	"fmt"

	"store-api/models"
	"store-api/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PageSize is the fixed page size used by every listing endpoint.
const PageSize = 5

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	ProductIdentifiers string `json:"productIdentifiers" binding:"required"`
	ShippingAddress    string `json:"shippingAddress" binding:"required,min=30,max=100"`
	PaymentMethod      string `json:"paymentMethod" binding:"required"`
}

// UpdateOrderStatusRequest carries a partial status update; a nil field
// leaves the corresponding status untouched.
type UpdateOrderStatusRequest struct {
	PaymentStatus *string `json:"paymentStatus"`
	OrderStatus   *string `json:"orderStatus"`
}

// OrdersPage is one page of the order listing.
type OrdersPage struct {
	Orders     []models.Order `json:"orders"`
	TotalPages int64          `json:"totalPages"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

// OrderService implements order assembly, listing, lifecycle updates and
// deletion over the order and catalog repositories.
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository) *OrderService {
	return &OrderService{orders: orders, products: products, users: users}
}

// CreateOrder validates the checkout request, resolves every product,
// snapshots unit prices and persists the order with its items as one unit.
// Resolution is all-or-nothing: the first unavailable product fails the
// whole order, in contrast to cart pricing which drops unresolved lines.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req *CreateOrderRequest) (*models.Order, *ServiceError) {
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, validationError("PaymentMethod", "Please select a valid payment method")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, validationError("Order", "Unable to create the order")
	}

	qm := ParseIdentifiers(req.ProductIdentifiers)
	if qm.Len() == 0 {
		return nil, validationError("Order", "Unable to create the order")
	}

	order := &models.Order{
		UserID:          userID,
		PaymentMethod:   req.PaymentMethod,
		ShippingFee:     models.ShippingFee,
		ShippingAddress: req.ShippingAddress,
		PaymentStatus:   models.PaymentStatuses[0],
		OrderStatus:     models.OrderStatuses[0],
	}

	for _, productID := range qm.ProductIDs() {
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, validationError("Product", fmt.Sprintf("Product with id %d is not available", productID))
			}
			return nil, internalError("Failed to load products")
		}

		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID: productID,
			Quantity:  qm.Quantity(productID),
			UnitPrice: product.Price,
		})
	}

	// Re-checked after resolution even though the map was non-empty.
	if len(order.OrderItems) == 0 {
		return nil, validationError("Order", "Unable to create the order")
	}

	if err := s.orders.Create(ctx, order); err != nil {
		zap.L().Error("Failed to persist order", zap.Uint("user_id", userID), zap.Error(err))
		return nil, internalError("Failed to create the order")
	}

	order.User = *user

	zap.L().Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.Int("items", len(order.OrderItems)),
	)
	return order, nil
}

// GetOrders returns one page of orders. Administrators see every order;
// other callers see only their own.
func (s *OrderService) GetOrders(ctx context.Context, userID uint, role string, page int) (*OrdersPage, *ServiceError) {
	if page < 1 {
		page = 1
	}

	var ownerID *uint
	if role != "admin" {
		ownerID = &userID
	}

	orders, total, err := s.orders.FindPage(ctx, ownerID, page, PageSize)
	if err != nil {
		zap.L().Error("Failed to fetch orders", zap.Error(err))
		return nil, internalError("Failed to fetch orders")
	}

	return &OrdersPage{
		Orders:     orders,
		TotalPages: totalPages(total, PageSize),
		Page:       page,
		PageSize:   PageSize,
	}, nil
}

// GetOrder returns a single order under the same visibility rule as GetOrders.
func (s *OrderService) GetOrder(ctx context.Context, userID uint, role string, orderID uint) (*models.Order, *ServiceError) {
	var ownerID *uint
	if role != "admin" {
		ownerID = &userID
	}

	order, err := s.orders.FindByID(ctx, orderID, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundError("Order not found")
		}
		zap.L().Error("Failed to fetch order", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, internalError("Failed to fetch order")
	}

	return order, nil
}

// UpdateOrderStatus applies a partial update to the order's payment and
// order statuses. Membership in the status vocabularies is the only rule:
// there is no transition table, so any status may move to any other.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, req *UpdateOrderStatusRequest) (*models.Order, *ServiceError) {
	if req.PaymentStatus == nil && req.OrderStatus == nil {
		return nil, validationError("Order", "Unable to update the order")
	}
	if req.PaymentStatus != nil && !models.ValidPaymentStatus(*req.PaymentStatus) {
		return nil, validationError("PaymentStatus", "Please select a valid payment status")
	}
	if req.OrderStatus != nil && !models.ValidOrderStatus(*req.OrderStatus) {
		return nil, validationError("OrderStatus", "Please select a valid order status")
	}

	order, err := s.orders.FindByID(ctx, orderID, nil)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundError("Order not found")
		}
		return nil, internalError("Failed to fetch order")
	}

	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.OrderStatus != nil {
		order.OrderStatus = *req.OrderStatus
	}

	if err := s.orders.UpdateStatus(ctx, order); err != nil {
		zap.L().Error("Failed to update order status", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, internalError("Failed to update the order")
	}

	zap.L().Info("Order status updated",
		zap.Uint("order_id", orderID),
		zap.String("payment_status", order.PaymentStatus),
		zap.String("order_status", order.OrderStatus),
	)
	return order, nil
}

// DeleteOrder removes an order and its items.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID uint) *ServiceError {
	order, err := s.orders.FindByID(ctx, orderID, nil)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFoundError("Order not found")
		}
		return internalError("Failed to fetch order")
	}

	if err := s.orders.Delete(ctx, order); err != nil {
		zap.L().Error("Failed to delete order", zap.Uint("order_id", orderID), zap.Error(err))
		return internalError("Failed to delete the order")
	}

	return nil
}

func totalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
