package transport

import (
	"net/http"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/utils/errors"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// Cart handler
// @Summary Cart view
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartView
// @Router /cart [get]
func (s *RestHandler) Cart(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.CartApp.View())
}

// RefreshCart handler
// @Summary Re-read the cart from the backend
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartView
// @Router /cart/refresh [post]
func (s *RestHandler) RefreshCart(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CartApp.View())
}

// AddCartItem handler
// @Summary Add one unit of a displayed product
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body addCartItemRequest true "Product to add"
// @Success 200 {object} model.CartView
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	product, ok := s.CatalogApp.Product(req.ProductID)
	if !ok {
		writeError(w, errors.WithMessage(constant.ErrNotFound, constant.MsgProductNotInView))
		return
	}

	if err := s.CartApp.AddItem(r.Context(), *product); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CartApp.View())
}

// SetCartQuantity handler
// @Summary Set a line's quantity; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body setQuantityRequest true "Quantity"
// @Success 200 {object} model.CartView
// @Router /cart/items/{productId} [put]
func (s *RestHandler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Quantity == nil {
		writeError(w, badRequest("quantity is required"))
		return
	}

	if err := s.CartApp.SetQuantity(r.Context(), pathParam(r, "productId"), *req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CartApp.View())
}

// RemoveCartItem handler
// @Summary Remove a line
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} model.CartView
// @Router /cart/items/{productId} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.RemoveItem(r.Context(), pathParam(r, "productId")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CartApp.View())
}

// IncrementCartItem handler
// @Summary Stepper plus
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} model.CartView
// @Router /cart/items/{productId}/increment [post]
func (s *RestHandler) IncrementCartItem(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.Increment(r.Context(), pathParam(r, "productId")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CartApp.View())
}

// DecrementCartItem handler
// @Summary Stepper minus; from one it removes the line
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} model.CartView
// @Router /cart/items/{productId}/decrement [post]
func (s *RestHandler) DecrementCartItem(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.Decrement(r.Context(), pathParam(r, "productId")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CartApp.View())
}
