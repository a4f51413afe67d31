package handlers

import (
	"net/http"

	"github.com/ghuser/smokeshop/pkg/errhttp"
	"github.com/ghuser/smokeshop/pkg/httpx"
	"github.com/ghuser/smokeshop/pkg/mediator"
	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/queries"
)

// GetOrdersHandler handles GET /Orders requests.
type GetOrdersHandler struct {
	med *mediator.Mediator
}

// NewGetOrdersHandler returns a GetOrdersHandler dispatching through med.
func NewGetOrdersHandler(med *mediator.Mediator) *GetOrdersHandler {
	return &GetOrdersHandler{med: med}
}

// Execute lists all orders with their products.
//
//	@Summary		List orders
//	@Description	Returns all orders, each with its product attached
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		OrderDto
//	@Failure		500	{object}	ErrorResponse
//	@Router			/Orders [get]
func (h *GetOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := mediator.Send[[]dtos.OrderDto](r.Context(), h.med, queries.GetAllOrdersQuery{})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}
