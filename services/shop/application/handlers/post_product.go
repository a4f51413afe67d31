package handlers

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/smokeshop/pkg/errhttp"
	"github.com/ghuser/smokeshop/pkg/httpx"
	"github.com/ghuser/smokeshop/pkg/mediator"
	pkgvalidator "github.com/ghuser/smokeshop/pkg/validator"
	"github.com/ghuser/smokeshop/services/shop/application/commands"
	"github.com/ghuser/smokeshop/services/shop/application/dtos"
)

// CreateProductRequest is the request body for POST /Products.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,max=150" example:"Novo Produto Teste"`
	Price decimal.Decimal `json:"price" example:"15.50"`
} // @name CreateProductRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

// PostProductHandler handles POST /Products requests.
type PostProductHandler struct {
	med *mediator.Mediator
}

// NewPostProductHandler returns a PostProductHandler dispatching through med.
func NewPostProductHandler(med *mediator.Mediator) *PostProductHandler {
	return &PostProductHandler{med: med}
}

// Execute creates a new product.
//
//	@Summary		Create product
//	@Description	Creates a new catalog product and returns its generated id
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	ProductDto
//	@Header			201		{string}	Location	"URL of the created product"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/Products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	id, err := mediator.Send[int64](r.Context(), h.med, commands.CreateProductCommand{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/Products/%d", id))
	httpx.JSON(w, http.StatusCreated, dtos.ProductDto{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	})
}
