package repository

import (
	"context"

	"store-api/models"

	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data access. List and
// detail lookups take an optional owner ID: nil means no ownership filter
// (administrator visibility).
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint, ownerID *uint) (*models.Order, error)
	FindPage(ctx context.Context, ownerID *uint, page, limit int) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, order *models.Order) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order together with its items in one transaction.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint, ownerID *uint) (*models.Order, error) {
	var order models.Order

	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("id = ?", id)
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}

	if err := query.First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindPage(ctx context.Context, ownerID *uint, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Order{})
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("User").
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// UpdateStatus writes only the two status columns; item rows are immutable
// after creation.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).
		Model(order).
		Select("payment_status", "order_status").
		Updates(map[string]interface{}{
			"payment_status": order.PaymentStatus,
			"order_status":   order.OrderStatus,
		}).Error
}

// Delete removes the order and its items atomically.
func (r *GormOrderRepository) Delete(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}
