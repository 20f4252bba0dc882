package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront-checkout-demo/internal/handler"
	authmw "storefront-checkout-demo/internal/middleware"
	"storefront-checkout-demo/internal/service"
)

type Server struct {
	echo            *echo.Echo
	cartHandler     *handler.CartHandler
	profileHandler  *handler.ProfileHandler
	checkoutHandler *handler.CheckoutHandler
	jwtSecret       string
}

func NewServer(
	cart *service.CartStore,
	vault service.VaultService,
	address service.AddressService,
	checkout service.CheckoutService,
	orders service.OrderHistoryService,
	jwtSecret string,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		cartHandler:     handler.NewCartHandler(cart),
		profileHandler:  handler.NewProfileHandler(vault, address),
		checkoutHandler: handler.NewCheckoutHandler(checkout, orders),
		jwtSecret:       jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	authed := api.Group("", authmw.AuthMiddleware(s.jwtSecret))

	// -------- cart --------
	authed.GET("/cart", s.cartHandler.GetCart)
	authed.POST("/cart/items", s.cartHandler.AddItem)
	authed.POST("/cart/items/:productID/decrease", s.cartHandler.DecreaseItem)
	authed.DELETE("/cart/items/:productID", s.cartHandler.RemoveItem)
	authed.DELETE("/cart", s.cartHandler.ClearCart)

	// -------- profile --------
	authed.GET("/profile/payment-methods", s.profileHandler.ListPaymentMethods)
	authed.POST("/profile/payment-methods", s.profileHandler.AddPaymentMethod)
	authed.POST("/profile/payment-methods/preview", s.profileHandler.PreviewCard)
	authed.DELETE("/profile/payment-methods/:methodID", s.profileHandler.RemovePaymentMethod)
	authed.GET("/profile/address", s.profileHandler.GetAddress)
	authed.PUT("/profile/address", s.profileHandler.SaveAddress)
	authed.DELETE("/profile/address", s.profileHandler.ClearAddress)

	// -------- checkout / orders --------
	authed.POST("/checkout", s.checkoutHandler.PlaceOrder)
	authed.GET("/orders", s.checkoutHandler.ListOrders)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
