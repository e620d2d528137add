package controllers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"store-api/cache"
	"store-api/models"
	"store-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductController handles catalog browsing and admin catalog CRUD.
// Reads go through the product cache when one is configured.
type ProductController struct {
	productService *services.ProductService
	productCache   *cache.ProductCache
	imagesDir      string
}

func NewProductController(productService *services.ProductService, productCache *cache.ProductCache, imagesDir string) *ProductController {
	return &ProductController{
		productService: productService,
		productCache:   productCache,
		imagesDir:      imagesDir,
	}
}

// GetCategories handles GET /products/categories
func (pc *ProductController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

// GetProducts handles GET /products with search, filter, sort and paging.
func (pc *ProductController) GetProducts(c *gin.Context) {
	query := services.ProductQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.DefaultQuery("sort", "id"),
		Order:    c.DefaultQuery("order", "desc"),
		Page:     parsePage(c),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if min, err := decimal.NewFromString(raw); err == nil {
			query.MinPrice = &min
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil {
			query.MaxPrice = &max
		}
	}

	cacheKey := c.Request.URL.RawQuery
	if cached, ok := pc.productCache.GetList(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	page, svcErr := pc.productService.GetProducts(c.Request.Context(), &query)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	pc.productCache.SetList(c.Request.Context(), cacheKey, page)
	c.JSON(http.StatusOK, page)
}

// GetProduct handles GET /products/:id
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if cached, ok := pc.productCache.GetProduct(c.Request.Context(), id); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, svcErr := pc.productService.GetProduct(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	pc.productCache.SetProduct(c.Request.Context(), product)
	c.JSON(http.StatusOK, product)
}

// productForm is the multipart create/update payload.
type productForm struct {
	Name        string                `form:"name" binding:"required,max=100"`
	Brand       string                `form:"brand" binding:"required,max=100"`
	Category    string                `form:"category" binding:"required"`
	Price       string                `form:"price" binding:"required"`
	Description string                `form:"description" binding:"max=4000"`
	ImageFile   *multipart.FileHeader `form:"imageFile"`
}

// CreateProduct handles POST /products (admin)
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"Price": "Please provide a valid price"}})
		return
	}

	if form.ImageFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"ImageFile": "Image File is required"}})
		return
	}

	imageFileName, err := pc.saveImage(c, form.ImageFile)
	if err != nil {
		zap.L().Error("Failed to store product image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store the image"})
		return
	}

	product, svcErr := pc.productService.CreateProduct(c.Request.Context(), &services.ProductInput{
		Name:          form.Name,
		Brand:         form.Brand,
		Category:      form.Category,
		Price:         price,
		Description:   form.Description,
		ImageFileName: imageFileName,
	})
	if svcErr != nil {
		pc.removeImage(imageFileName)
		respondError(c, svcErr)
		return
	}

	pc.productCache.Invalidate(c.Request.Context(), product.ID)
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id (admin)
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"Price": "Please provide a valid price"}})
		return
	}

	previous, svcErr := pc.productService.GetProduct(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	imageFileName := ""
	if form.ImageFile != nil {
		imageFileName, err = pc.saveImage(c, form.ImageFile)
		if err != nil {
			zap.L().Error("Failed to store product image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store the image"})
			return
		}
	}

	product, svcErr := pc.productService.UpdateProduct(c.Request.Context(), id, &services.ProductInput{
		Name:          form.Name,
		Brand:         form.Brand,
		Category:      form.Category,
		Price:         price,
		Description:   form.Description,
		ImageFileName: imageFileName,
	})
	if svcErr != nil {
		pc.removeImage(imageFileName)
		respondError(c, svcErr)
		return
	}

	if imageFileName != "" && previous.ImageFileName != "" {
		pc.removeImage(previous.ImageFileName)
	}

	pc.productCache.Invalidate(c.Request.Context(), product.ID)
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id (admin)
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, svcErr := pc.productService.DeleteProduct(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	pc.removeImage(product.ImageFileName)
	pc.productCache.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// saveImage stores the uploaded file under a timestamp name and returns it.
func (pc *ProductController) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(pc.imagesDir, 0o755); err != nil {
		return "", err
	}

	name := time.Now().Format("20060102150405.000000") + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(pc.imagesDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

func (pc *ProductController) removeImage(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(pc.imagesDir, name)); err != nil && !os.IsNotExist(err) {
		zap.L().Warn("Failed to remove product image", zap.String("file", name), zap.Error(err))
	}
}
