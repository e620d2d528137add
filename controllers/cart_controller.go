package controllers

import (
	"net/http"

	"store-api/models"
	"store-api/services"

	"github.com/gin-gonic/gin"
)

// CartController handles the cart preview endpoints. Carts are derived from
// the request on every call and never stored.
type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart handles GET /cart?productIdentifiers=9-9-7
func (cc *CartController) GetCart(c *gin.Context) {
	qm := services.ParseIdentifiers(c.Query("productIdentifiers"))

	cart, svcErr := cc.cartService.PriceCart(c.Request.Context(), qm)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GetPaymentMethods handles GET /cart/payment-methods
func (cc *CartController) GetPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, models.PaymentMethods)
}
