package services_test

import (
	"context"
	"testing"

	"store-api/models"
	"store-api/repository"
	"store-api/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ---- mock product repository ----

type mockProductRepo struct {
	products map[uint]*models.Product
	nextID   uint
	findErr  error

	lastFilters repository.ProductFilters
	lastPage    int
}

func (m *mockProductRepo) FindByID(_ context.Context, id uint) (*models.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if p, ok := m.products[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) FindPage(_ context.Context, filters repository.ProductFilters, page, _ int) ([]models.Product, int64, error) {
	m.lastFilters = filters
	m.lastPage = page
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) Create(_ context.Context, product *models.Product) error {
	if m.nextID == 0 {
		m.nextID = uint(len(m.products)) + 1
	}
	product.ID = m.nextID
	m.nextID++
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, product *models.Product) error {
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, product *models.Product) error {
	delete(m.products, product.ID)
	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ---- parser tests ----

func TestParseIdentifiers_Empty(t *testing.T) {
	qm := services.ParseIdentifiers("")
	assert.Equal(t, 0, qm.Len())
	assert.Empty(t, qm.ProductIDs())
}

func TestParseIdentifiers_AccumulatesRepeats(t *testing.T) {
	qm := services.ParseIdentifiers("9-9-7")
	assert.Equal(t, 2, qm.Len())
	assert.Equal(t, 2, qm.Quantity(9))
	assert.Equal(t, 1, qm.Quantity(7))
}

func TestParseIdentifiers_SkipsMalformedTokens(t *testing.T) {
	qm := services.ParseIdentifiers("9-x-7")
	assert.Equal(t, 2, qm.Len())
	assert.Equal(t, 1, qm.Quantity(9))
	assert.Equal(t, 1, qm.Quantity(7))
}

func TestParseIdentifiers_FirstOccurrenceOrder(t *testing.T) {
	qm := services.ParseIdentifiers("4-9-8-7-9-23")
	assert.Equal(t, []uint{4, 9, 8, 7, 23}, qm.ProductIDs())
	assert.Equal(t, 2, qm.Quantity(9))
}

func TestParseIdentifiers_NeverFails(t *testing.T) {
	for _, raw := range []string{"---", "abc", "-", "1-2-3-abc-4", "--5--"} {
		qm := services.ParseIdentifiers(raw)
		total := 0
		for _, id := range qm.ProductIDs() {
			total += qm.Quantity(id)
		}
		// counts only the parsable tokens
		assert.LessOrEqual(t, total, len(raw))
	}

	qm := services.ParseIdentifiers("1-2-3-abc-4")
	sum := 0
	for _, id := range qm.ProductIDs() {
		sum += qm.Quantity(id)
	}
	assert.Equal(t, 4, sum)
}

// ---- pricing tests ----

func TestPriceCart_DropsUnresolvedLines(t *testing.T) {
	repo := &mockProductRepo{products: map[uint]*models.Product{
		1: {ID: 1, Name: "Phone", Price: price("10.00")},
	}}
	svc := services.NewCartService(repo)

	cart, svcErr := svc.PriceCart(context.Background(), services.ParseIdentifiers("1-1-99"))
	assert.Nil(t, svcErr)
	assert.Len(t, cart.CartItems, 1)
	assert.Equal(t, 2, cart.CartItems[0].Quantity)
	assert.True(t, cart.SubTotal.Equal(price("20.00")), "subtotal %s", cart.SubTotal)
	assert.True(t, cart.TotalPrice.Equal(price("25.00")), "total %s", cart.TotalPrice)
}

func TestPriceCart_EmptyIdentifiers(t *testing.T) {
	svc := services.NewCartService(&mockProductRepo{products: map[uint]*models.Product{}})

	cart, svcErr := svc.PriceCart(context.Background(), services.ParseIdentifiers(""))
	assert.Nil(t, svcErr)
	assert.Empty(t, cart.CartItems)
	assert.True(t, cart.SubTotal.IsZero())
	assert.True(t, cart.TotalPrice.Equal(models.ShippingFee))
}

func TestPriceCart_ExactDecimalArithmetic(t *testing.T) {
	repo := &mockProductRepo{products: map[uint]*models.Product{
		1: {ID: 1, Price: price("0.10")},
	}}
	svc := services.NewCartService(repo)

	cart, svcErr := svc.PriceCart(context.Background(), services.ParseIdentifiers("1-1-1"))
	assert.Nil(t, svcErr)
	assert.True(t, cart.SubTotal.Equal(price("0.30")), "subtotal %s", cart.SubTotal)
	assert.True(t, cart.TotalPrice.Equal(price("5.30")), "total %s", cart.TotalPrice)
}

func TestPriceCart_LinesFollowRequestOrder(t *testing.T) {
	repo := &mockProductRepo{products: map[uint]*models.Product{
		3: {ID: 3, Price: price("1.00")},
		8: {ID: 8, Price: price("2.00")},
	}}
	svc := services.NewCartService(repo)

	cart, svcErr := svc.PriceCart(context.Background(), services.ParseIdentifiers("8-3-8"))
	assert.Nil(t, svcErr)
	assert.Len(t, cart.CartItems, 2)
	assert.Equal(t, uint(8), cart.CartItems[0].Product.ID)
	assert.Equal(t, uint(3), cart.CartItems[1].Product.ID)
}
