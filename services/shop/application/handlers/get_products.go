package handlers

import (
	"net/http"

	"github.com/ghuser/smokeshop/pkg/errhttp"
	"github.com/ghuser/smokeshop/pkg/httpx"
	"github.com/ghuser/smokeshop/pkg/mediator"
	"github.com/ghuser/smokeshop/services/shop/application/dtos"
	"github.com/ghuser/smokeshop/services/shop/application/queries"
)

// GetProductsHandler handles GET /Products requests.
type GetProductsHandler struct {
	med *mediator.Mediator
}

// NewGetProductsHandler returns a GetProductsHandler dispatching through med.
func NewGetProductsHandler(med *mediator.Mediator) *GetProductsHandler {
	return &GetProductsHandler{med: med}
}

// Execute lists all products.
//
//	@Summary		List products
//	@Description	Returns every catalog product
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		ProductDto
//	@Failure		500	{object}	ErrorResponse
//	@Router			/Products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := mediator.Send[[]dtos.ProductDto](r.Context(), h.med, queries.GetAllProductsQuery{})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}
