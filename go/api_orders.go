package ordersserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/heromeals/orders-api/internal/domains/orders/adapters/http/mapper"
	orderstypes "github.com/heromeals/orders-api/internal/domains/orders/application/types"
	ordersports "github.com/heromeals/orders-api/internal/domains/orders/ports"
)

// OrdersAPI wires HTTP transport with the orders bounded context service.
type OrdersAPI struct {
	service ordersports.Service
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service ordersports.Service) OrdersAPI {
	return OrdersAPI{service: service}
}

// Get /orders
// List all orders, newest first
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Get /orders/:orderId
// Fetch a single order
func (api *OrdersAPI) GetOrderById(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), orderstypes.OrderIdentifier{ID: id})
	if err != nil {
		respondOrderServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Post /orders
// Place a new order and hand it off for fulfillment
func (api *OrdersAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.OrderCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), orderhttpmapper.ToCreateInput(payload))
	if err != nil {
		respondOrderServiceError(c, err, http.StatusBadRequest)
		return
	}
	// Fulfillment continues asynchronously, so the order is accepted rather
	// than done.
	c.JSON(http.StatusAccepted, orderhttpmapper.FromDomainOrder(created))
}

// Put /orders/:orderId
// Replace an existing order
func (api *OrdersAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderhttpmapper.OrderUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), orderhttpmapper.ToUpdateInput(id, payload))
	if err != nil {
		respondOrderServiceError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

// Patch /orders/:orderId
// Update status and message of an existing order
func (api *OrdersAPI) PatchOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderhttpmapper.OrderPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.PartialUpdate(c.Request.Context(), orderhttpmapper.ToPatchInput(id, payload))
	if err != nil {
		respondOrderServiceError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

// Delete /orders/:orderId
// Remove an order
func (api *OrdersAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), orderstypes.OrderIdentifier{ID: id}); err != nil {
		respondOrderServiceError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order %d deleted successfully", id)})
}

// Get /orders/status/:status
// List orders matching a status
func (api *OrdersAPI) ListOrdersByStatus(c *gin.Context) {
	orders, err := api.service.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondOrderServiceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
