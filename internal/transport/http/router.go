package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/mkohler/webshop/internal/handlers"
	"github.com/mkohler/webshop/internal/middleware/auth"
)

type Deps struct {
	Auth            *auth.Middleware
	AuthHandler     *handlers.AuthHandler
	CategoryHandler *handlers.CategoryHandler
	ProductHandler  *handlers.ProductHandler
	OrderHandler    *handlers.OrderHandler
	SearchHandler   *handlers.SearchHandler
}

// Register wires the route groups: public, signed-in (RequireSignIn) and
// admin (RequireSignIn then RequireAdmin, strictly in that order).
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/auth/register", d.AuthHandler.Register)
	v1.POST("/auth/login", d.AuthHandler.Login)
	v1.GET("/search", d.SearchHandler.Search)

	v1.GET("/categories", d.CategoryHandler.List)
	v1.GET("/categories/:slug", d.CategoryHandler.Single)
	v1.GET("/products", d.ProductHandler.List)
	v1.GET("/products/:slug", d.ProductHandler.Single)

	signedIn := v1.Group("", d.Auth.RequireSignIn)
	signedIn.GET("/auth/user-auth", d.AuthHandler.Probe)
	signedIn.PUT("/auth/profile", d.AuthHandler.UpdateProfile)
	signedIn.POST("/orders", d.OrderHandler.Create)
	signedIn.GET("/orders", d.OrderHandler.MyOrders)

	admin := v1.Group("/admin", d.Auth.RequireSignIn, d.Auth.RequireAdmin)
	admin.GET("/auth", d.AuthHandler.Probe)
	admin.POST("/categories", d.CategoryHandler.Create)
	admin.PUT("/categories/:id", d.CategoryHandler.Update)
	admin.DELETE("/categories/:id", d.CategoryHandler.Delete)
	admin.POST("/products", d.ProductHandler.Create)
	admin.PUT("/products/:id", d.ProductHandler.Update)
	admin.DELETE("/products/:id", d.ProductHandler.Delete)
	admin.GET("/orders", d.OrderHandler.AllOrders)
	admin.PUT("/orders/:id/status", d.OrderHandler.UpdateStatus)
}
