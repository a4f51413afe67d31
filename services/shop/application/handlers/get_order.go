package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/smokeshop/pkg/errhttp"
	"github.com/ghuser/smokeshop/pkg/httpx"
	"github.com/ghuser/smokeshop/pkg/mediator"
	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/queries"
	shopdomain "github.com/ghuser/smokeshop/services/shop/domain"
)

// GetOrderHandler handles GET /Orders/{id} requests.
type GetOrderHandler struct {
	med *mediator.Mediator
}

// NewGetOrderHandler returns a GetOrderHandler dispatching through med.
func NewGetOrderHandler(med *mediator.Mediator) *GetOrderHandler {
	return &GetOrderHandler{med: med}
}

// Execute fetches one order by id, with its product attached.
//
//	@Summary		Get order
//	@Description	Returns a single order with its product
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	OrderDto
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	"order does not exist"
//	@Router			/Orders/{id} [get]
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	order, err := mediator.Send[dtos.OrderDto](r.Context(), h.med, queries.GetOrderByIDQuery{ID: id})
	if err != nil {
		if errors.Is(err, shopdomain.ErrOrderNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}
