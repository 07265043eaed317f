package ordersserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a collection of Route.
type Routes []Route

// ApiHandleFunctions groups the per-tag API handlers consumed by the router.
type ApiHandleFunctions struct {
	OrdersAPI OrdersAPI
}

// NewRouter returns a gin engine with all routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc is used for routes without a registered handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			Name:        "ListOrders",
			Method:      http.MethodGet,
			Pattern:     "/orders",
			HandlerFunc: handleFunctions.OrdersAPI.ListOrders,
		},
		{
			Name:        "CreateOrder",
			Method:      http.MethodPost,
			Pattern:     "/orders",
			HandlerFunc: handleFunctions.OrdersAPI.CreateOrder,
		},
		{
			Name:        "ListOrdersByStatus",
			Method:      http.MethodGet,
			Pattern:     "/orders/status/:status",
			HandlerFunc: handleFunctions.OrdersAPI.ListOrdersByStatus,
		},
		{
			Name:        "GetOrderById",
			Method:      http.MethodGet,
			Pattern:     "/orders/:orderId",
			HandlerFunc: handleFunctions.OrdersAPI.GetOrderById,
		},
		{
			Name:        "UpdateOrder",
			Method:      http.MethodPut,
			Pattern:     "/orders/:orderId",
			HandlerFunc: handleFunctions.OrdersAPI.UpdateOrder,
		},
		{
			Name:        "PatchOrder",
			Method:      http.MethodPatch,
			Pattern:     "/orders/:orderId",
			HandlerFunc: handleFunctions.OrdersAPI.PatchOrder,
		},
		{
			Name:        "DeleteOrder",
			Method:      http.MethodDelete,
			Pattern:     "/orders/:orderId",
			HandlerFunc: handleFunctions.OrdersAPI.DeleteOrder,
		},
	}
}
