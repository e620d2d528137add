package services

import (
	"context"

	"store-api/models"
	"store-api/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductQuery carries the catalog listing parameters.
type ProductQuery struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
	Order    string
	Page     int
}

// ProductsPage is one page of the catalog listing.
type ProductsPage struct {
	Products   []models.Product `json:"products"`
	TotalPages int64            `json:"totalPages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// ProductInput is the create/update payload for a catalog entry. The image
// file itself is handled by the controller; only the stored file name
// reaches the service.
type ProductInput struct {
	Name          string
	Brand         string
	Category      string
	Price         decimal.Decimal
	Description   string
	ImageFileName string
}

// ProductService implements catalog queries and admin CRUD.
type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// GetProducts returns one filtered, sorted catalog page.
func (s *ProductService) GetProducts(ctx context.Context, query *ProductQuery) (*ProductsPage, *ServiceError) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	filters := repository.ProductFilters{
		Search:   query.Search,
		Category: query.Category,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Sort:     query.Sort,
		Order:    query.Order,
	}

	products, total, err := s.products.FindPage(ctx, filters, page, PageSize)
	if err != nil {
		zap.L().Error("Failed to fetch products", zap.Error(err))
		return nil, internalError("Failed to fetch products")
	}

	return &ProductsPage{
		Products:   products,
		TotalPages: totalPages(total, PageSize),
		Page:       page,
		PageSize:   PageSize,
	}, nil
}

// GetProduct returns a catalog entry by ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundError("Product not found")
		}
		return nil, internalError("Failed to fetch product")
	}
	return product, nil
}

// CreateProduct validates the category and persists a new catalog entry.
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*models.Product, *ServiceError) {
	if !models.ValidCategory(input.Category) {
		return nil, validationError("Category", "Please select a valid category")
	}

	product := &models.Product{
		Name:          input.Name,
		Brand:         input.Brand,
		Category:      input.Category,
		Price:         input.Price,
		Description:   input.Description,
		ImageFileName: input.ImageFileName,
	}

	if err := s.products.Create(ctx, product); err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		return nil, internalError("Failed to create product")
	}

	return product, nil
}

// UpdateProduct overwrites a catalog entry. An empty ImageFileName keeps
// the existing image.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input *ProductInput) (*models.Product, *ServiceError) {
	if !models.ValidCategory(input.Category) {
		return nil, validationError("Category", "Please select a valid category")
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundError("Product not found")
		}
		return nil, internalError("Failed to fetch product")
	}

	product.Name = input.Name
	product.Brand = input.Brand
	product.Category = input.Category
	product.Price = input.Price
	product.Description = input.Description
	if input.ImageFileName != "" {
		product.ImageFileName = input.ImageFileName
	}

	if err := s.products.Update(ctx, product); err != nil {
		zap.L().Error("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return nil, internalError("Failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a catalog entry and returns it so the caller can
// clean up the stored image file.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) (*models.Product, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundError("Product not found")
		}
		return nil, internalError("Failed to fetch product")
	}

	if err := s.products.Delete(ctx, product); err != nil {
		zap.L().Error("Failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		return nil, internalError("Failed to delete product")
	}

	return product, nil
}
