package transport

import (
	"net/http"
	"strconv"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/utils/errors"
)

type setTabRequest struct {
	Tab string `json:"tab"`
}

// Dashboard handler
// @Summary Supplier dashboard view
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.DashboardView
// @Failure 403 {object} Response
// @Router /dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.DashboardApp.View())
}

// RefreshDashboard handler
// @Summary Reload stall, products, analytics and orders
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.DashboardView
// @Router /dashboard/refresh [post]
func (s *RestHandler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	if err := s.DashboardApp.Load(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.DashboardApp.View())
}

// SetDashboardTab handler
// @Summary Switch dashboard tab
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body setTabRequest true "Tab"
// @Success 200 {object} model.DashboardView
// @Failure 400 {object} Response
// @Router /dashboard/tab [put]
func (s *RestHandler) SetDashboardTab(w http.ResponseWriter, r *http.Request) {
	var req setTabRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.DashboardApp.SetTab(req.Tab); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.DashboardApp.View())
}

// CreateStall handler
// @Summary Create the supplier's stall
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body model.StallRequest true "Stall"
// @Success 200 {object} model.DashboardView
// @Failure 400 {object} Response
// @Router /dashboard/stall [post]
func (s *RestHandler) CreateStall(w http.ResponseWriter, r *http.Request) {
	var req model.StallRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.DashboardApp.CreateStall(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.DashboardApp.View())
}

// AddProduct handler
// @Summary Add a product
// @Description Price and quantity are sent as typed and coerced before submission
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body model.ProductForm true "Product form"
// @Success 200 {object} model.DashboardView
// @Failure 400 {object} Response
// @Router /dashboard/products [post]
func (s *RestHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	form := model.DefaultProductForm()
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.DashboardApp.AddProduct(r.Context(), form); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.DashboardApp.View())
}

// DeleteProduct handler
// @Summary Delete a product
// @Description Without confirm=true the deletion is not performed and the confirmation prompt is returned
// @Tags Dashboard
// @Produce json
// @Param productId path string true "Product ID"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} model.DashboardView
// @Failure 409 {object} Response
// @Router /dashboard/products/{productId} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	deleted, err := s.DashboardApp.DeleteProduct(r.Context(), pathParam(r, "productId"), func(string) bool {
		return confirmed
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeError(w, errors.WithMessage(constant.ErrNotConfirmed, constant.MsgConfirmDelete))
		return
	}
	writeSuccess(w, s.DashboardApp.View())
}
