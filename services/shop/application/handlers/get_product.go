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

// GetProductHandler handles GET /Products/{id} requests.
type GetProductHandler struct {
	med *mediator.Mediator
}

// NewGetProductHandler returns a GetProductHandler dispatching through med.
func NewGetProductHandler(med *mediator.Mediator) *GetProductHandler {
	return &GetProductHandler{med: med}
}

// Execute fetches one product by id.
//
//	@Summary		Get product
//	@Description	Returns a single catalog product
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product id"
//	@Success		200	{object}	ProductDto
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	"product does not exist"
//	@Router			/Products/{id} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	product, err := mediator.Send[dtos.ProductDto](r.Context(), h.med, queries.GetProductByIDQuery{ID: id})
	if err != nil {
		// Absent is not a failure; respond 404 with an empty body.
		if errors.Is(err, shopdomain.ErrProductNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}
