package services

import (
	"context"
	"strconv"
	"strings"

	"store-api/models"
	"store-api/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuantityMap maps product IDs to requested quantities. Iteration follows
// the order in which each ID first appeared in the request, so priced line
// items come out deterministically.
type QuantityMap struct {
	counts map[uint]int
	order  []uint
}

// ParseIdentifiers turns a '-'-delimited string of product IDs into a
// QuantityMap. Repeated IDs accumulate one count per occurrence. Tokens
// that do not parse as an integer are skipped silently; the parse never
// fails, whatever the input.
//
// Example: "9-9-7" -> {9: 2, 7: 1}
func ParseIdentifiers(raw string) *QuantityMap {
	qm := &QuantityMap{counts: make(map[uint]int)}
	if len(raw) == 0 {
		return qm
	}

	for _, token := range strings.Split(raw, "-") {
		id, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			continue
		}
		qm.add(uint(id))
	}
	return qm
}

func (m *QuantityMap) add(id uint) {
	if _, seen := m.counts[id]; !seen {
		m.order = append(m.order, id)
	}
	m.counts[id]++
}

// Len returns the number of distinct product IDs.
func (m *QuantityMap) Len() int { return len(m.counts) }

// Quantity returns the accumulated count for id, or 0 if absent.
func (m *QuantityMap) Quantity(id uint) int { return m.counts[id] }

// ProductIDs returns the distinct IDs in first-occurrence order.
func (m *QuantityMap) ProductIDs() []uint { return m.order }

// CartService prices carts against the catalog. Pricing is best-effort:
// identifiers that no longer resolve are dropped from the preview rather
// than failing it, unlike order creation which is all-or-nothing.
type CartService struct {
	products repository.ProductRepository
}

func NewCartService(products repository.ProductRepository) *CartService {
	return &CartService{products: products}
}

// PriceCart resolves each entry of qm against the catalog and computes the
// priced cart. Subtotal arithmetic is exact decimal; the shipping fee is a
// flat constant regardless of cart size.
func (s *CartService) PriceCart(ctx context.Context, qm *QuantityMap) (*models.Cart, *ServiceError) {
	cart := &models.Cart{
		CartItems:   []models.CartItem{},
		SubTotal:    decimal.Zero,
		ShippingFee: models.ShippingFee,
	}

	for _, id := range qm.ProductIDs() {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, internalError("Failed to load products")
		}

		quantity := qm.Quantity(id)
		cart.CartItems = append(cart.CartItems, models.CartItem{
			Product:  *product,
			Quantity: quantity,
		})
		cart.SubTotal = cart.SubTotal.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	cart.TotalPrice = cart.SubTotal.Add(cart.ShippingFee)
	return cart, nil
}
