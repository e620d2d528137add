package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-api/controllers"
	"store-api/middleware"
	"store-api/models"
	"store-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ---- in-memory order store ----

type memOrderRepo struct {
	orders map[uint]*models.Order
	nextID uint
}

func (m *memOrderRepo) Create(_ context.Context, order *models.Order) error {
	if m.nextID == 0 {
		m.nextID = 1
	}
	order.ID = m.nextID
	m.nextID++
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *memOrderRepo) FindByID(_ context.Context, id uint, ownerID *uint) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok || (ownerID != nil && order.UserID != *ownerID) {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *order
	return &copy, nil
}

func (m *memOrderRepo) FindPage(_ context.Context, ownerID *uint, _, _ int) ([]models.Order, int64, error) {
	var out []models.Order
	for _, o := range m.orders {
		if ownerID == nil || o.UserID == *ownerID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, order *models.Order) error {
	stored := m.orders[order.ID]
	stored.PaymentStatus = order.PaymentStatus
	stored.OrderStatus = order.OrderStatus
	return nil
}

func (m *memOrderRepo) Delete(_ context.Context, order *models.Order) error {
	delete(m.orders, order.ID)
	return nil
}

type memUserRepo struct {
	users map[uint]*models.User
}

func (m *memUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *memUserRepo) EmailExists(_ context.Context, _ string) (bool, error) { return false, nil }
func (m *memUserRepo) FindPage(_ context.Context, _, _ int) ([]models.User, int64, error) {
	return nil, 0, nil
}
func (m *memUserRepo) Create(_ context.Context, _ *models.User) error { return nil }
func (m *memUserRepo) Update(_ context.Context, _ *models.User) error { return nil }

// fakeAuth injects an authenticated caller without a real token.
func fakeAuth(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, userID)
		c.Set(middleware.RoleContextKey, role)
		c.Next()
	}
}

func setupOrderRouter(userID uint, role string) (*gin.Engine, *memOrderRepo) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	orders := &memOrderRepo{orders: map[uint]*models.Order{}}
	catalog := &fixedCatalog{products: map[uint]models.Product{
		1: {ID: 1, Name: "Pixel 9", Price: decimal.RequireFromString("10.00")},
	}}
	users := &memUserRepo{users: map[uint]*models.User{
		userID: {ID: userID, FirstName: "Ada", Email: "ada@example.com", Role: role},
	}}

	oc := controllers.NewOrderController(services.NewOrderService(orders, catalog, users))

	authed := r.Group("/", fakeAuth(userID, role))
	authed.POST("/orders", oc.CreateOrder)
	authed.GET("/orders/:id", oc.GetOrder)
	authed.PUT("/orders/:id", oc.UpdateOrder)
	return r, orders
}

func postOrder(r *gin.Engine, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const testShippingAddress = "221B Baker Street, London, Greater London NW1"

func TestCreateOrder_Created(t *testing.T) {
	r, orders := setupOrderRouter(7, "client")

	w := postOrder(r, services.CreateOrderRequest{
		ProductIdentifiers: "1-1",
		ShippingAddress:    testShippingAddress,
		PaymentMethod:      "Cash",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, orders.orders, 1)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "Pending", order.PaymentStatus)
	assert.Equal(t, "Created", order.OrderStatus)
}

func TestCreateOrder_FieldScopedErrorShape(t *testing.T) {
	r, _ := setupOrderRouter(7, "client")

	w := postOrder(r, services.CreateOrderRequest{
		ProductIdentifiers: "1-42",
		ShippingAddress:    testShippingAddress,
		PaymentMethod:      "Cash",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Product with id 42 is not available", body.Errors["Product"])
}

func TestCreateOrder_ShortAddressRejectedByBinding(t *testing.T) {
	r, orders := setupOrderRouter(7, "client")

	w := postOrder(r, services.CreateOrderRequest{
		ProductIdentifiers: "1",
		ShippingAddress:    "too short",
		PaymentMethod:      "Cash",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orders.orders)
}

func TestGetOrder_InvalidIDParam(t *testing.T) {
	r, _ := setupOrderRouter(7, "client")

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrder_StatusChange(t *testing.T) {
	r, orders := setupOrderRouter(1, "admin")
	orders.orders[1] = &models.Order{ID: 1, UserID: 1, PaymentStatus: "Pending", OrderStatus: "Created"}
	orders.nextID = 2

	body, _ := json.Marshal(gin.H{"orderStatus": "Shipped"})
	req := httptest.NewRequest(http.MethodPut, "/orders/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shipped", orders.orders[1].OrderStatus)
	assert.Equal(t, "Pending", orders.orders[1].PaymentStatus)
}
