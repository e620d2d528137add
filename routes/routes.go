package routes

import (
	"net/http"

	"store-api/controllers"
	"store-api/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every controller the router wires up.
type Controllers struct {
	Auth    *controllers.AuthController
	User    *controllers.UserController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Contact *controllers.ContactController
}

// Register wires all store routes onto r. Admin groups are gated by an
// explicit role allow-list on top of token authentication.
func Register(r *gin.Engine, c Controllers) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit())
	auth.POST("/register", c.Auth.Register)
	auth.POST("/login", c.Auth.Login)
	auth.POST("/forgot-password", c.Auth.ForgotPassword)
	auth.POST("/reset-password", c.Auth.ResetPassword)

	profile := r.Group("/auth")
	profile.Use(middleware.Authenticate())
	profile.GET("/profile", c.Auth.GetProfile)
	profile.PUT("/profile", c.Auth.UpdateProfile)
	profile.PUT("/password", c.Auth.UpdatePassword)

	users := r.Group("/users")
	users.Use(middleware.Authenticate(), middleware.RequireRole("admin"))
	users.GET("", c.User.GetUsers)
	users.GET("/:id", c.User.GetUser)

	products := r.Group("/products")
	products.GET("", c.Product.GetProducts)
	products.GET("/categories", c.Product.GetCategories)
	products.GET("/:id", c.Product.GetProduct)

	productsAdmin := r.Group("/products")
	productsAdmin.Use(middleware.Authenticate(), middleware.RequireRole("admin"))
	productsAdmin.POST("", c.Product.CreateProduct)
	productsAdmin.PUT("/:id", c.Product.UpdateProduct)
	productsAdmin.DELETE("/:id", c.Product.DeleteProduct)

	cart := r.Group("/cart")
	cart.GET("", c.Cart.GetCart)
	cart.GET("/payment-methods", c.Cart.GetPaymentMethods)

	orders := r.Group("/orders")
	orders.Use(middleware.Authenticate())
	orders.POST("", c.Order.CreateOrder)
	orders.GET("", c.Order.GetOrders)
	orders.GET("/:id", c.Order.GetOrder)

	ordersAdmin := r.Group("/orders")
	ordersAdmin.Use(middleware.Authenticate(), middleware.RequireRole("admin"))
	ordersAdmin.PUT("/:id", c.Order.UpdateOrder)
	ordersAdmin.DELETE("/:id", c.Order.DeleteOrder)

	contacts := r.Group("/contacts")
	contacts.GET("/subjects", c.Contact.GetSubjects)
	contacts.POST("", c.Contact.CreateContact)

	contactsAdmin := r.Group("/contacts")
	contactsAdmin.Use(middleware.Authenticate(), middleware.RequireRole("admin"))
	contactsAdmin.GET("", c.Contact.GetContacts)
	contactsAdmin.GET("/:id", c.Contact.GetContact)
	contactsAdmin.DELETE("/:id", c.Contact.DeleteContact)
}
