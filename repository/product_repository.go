package repository

import (
	"context"

	"store-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilters narrows and orders a catalog page query.
type ProductFilters struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
	Order    string
}

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindPage(ctx context.Context, filters ProductFilters, page, limit int) ([]models.Product, int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// sortColumns whitelists the sortable columns exposed by the API.
var sortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"brand":    "brand",
	"category": "category",
	"price":    "price",
	"date":     "created_at",
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindPage retrieves one catalog page matching filters along with the total
// row count before pagination.
func (r *GormProductRepository) FindPage(ctx context.Context, filters ProductFilters, page, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", filters.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[filters.Sort]
	if !ok {
		column = "id"
	}
	direction := "DESC"
	if filters.Order == "asc" {
		direction = "ASC"
	}

	offset := (page - 1) * limit
	if err := query.
		Order(column + " " + direction).
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Delete(product).Error
}
