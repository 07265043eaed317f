package ordersserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogports "github.com/heromeals/orders-api/internal/domains/catalog/ports"
	ordersapp "github.com/heromeals/orders-api/internal/domains/orders/application"
	ordersdomain "github.com/heromeals/orders-api/internal/domains/orders/domain"
	ordersports "github.com/heromeals/orders-api/internal/domains/orders/ports"
	apierrors "github.com/heromeals/orders-api/internal/shared/errors"
)

// respondError writes a flat error body for transport-level failures.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	apierrors.RespondMessage(c, status, err.Error())
}

// respondOrderServiceError maps application and domain errors onto the HTTP
// contract. fallbackStatus is used for unclassified errors, which differ by
// operation: reads fail with 500, mutations with 400.
func respondOrderServiceError(c *gin.Context, err error, fallbackStatus int) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ordersports.ErrNotFound),
		errors.Is(err, catalogports.ErrHeroNotFound),
		errors.Is(err, catalogports.ErrMealNotFound):
		apierrors.RespondMessage(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ordersdomain.ErrInvalidStatus):
		apierrors.Respond(c, http.StatusBadRequest, apierrors.NewInvalidStatus(ordersdomain.StatusValues()))
	case errors.Is(err, ordersapp.ErrMissingReference):
		apierrors.Respond(c, http.StatusBadRequest, apierrors.New(apierrors.MsgMissingReference))
	case errors.Is(err, ordersapp.ErrInvalidInput):
		apierrors.RespondMessage(c, http.StatusBadRequest, err.Error())
	default:
		apierrors.RespondMessage(c, fallbackStatus, err.Error())
	}
}
