package transport

import (
	"net/http"

	"github.com/muhammadheryan/micromarket/model"
)

// Catalog handler
// @Summary Marketplace view
// @Description Supplier grid, filters and, when a stall is entered, its products and reviews
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CatalogView
// @Router /catalog [get]
func (s *RestHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.CatalogApp.View())
}

// RefreshCatalog handler
// @Summary Re-list suppliers with the current filter
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CatalogView
// @Failure 502 {object} Response
// @Router /catalog/refresh [post]
func (s *RestHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := s.CatalogApp.ListSuppliers(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CatalogApp.View())
}

// SetSupplierFilter handler
// @Summary Filter suppliers
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.SupplierFilter true "Supplier filter"
// @Success 200 {object} model.CatalogView
// @Router /catalog/supplier-filter [put]
func (s *RestHandler) SetSupplierFilter(w http.ResponseWriter, r *http.Request) {
	var filter model.SupplierFilter
	if err := decodeJSON(r, &filter); err != nil {
		writeError(w, err)
		return
	}
	if err := s.CatalogApp.SetSupplierFilter(r.Context(), filter); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CatalogApp.View())
}

// SetProductFilter handler
// @Summary Filter the entered stall's products
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.ProductFilter true "Product filter"
// @Success 200 {object} model.CatalogView
// @Router /catalog/product-filter [put]
func (s *RestHandler) SetProductFilter(w http.ResponseWriter, r *http.Request) {
	var filter model.ProductFilter
	if err := decodeJSON(r, &filter); err != nil {
		writeError(w, err)
		return
	}
	if err := s.CatalogApp.SetProductFilter(r.Context(), filter); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CatalogApp.View())
}

// EnterStall handler
// @Summary Enter a supplier's stall
// @Tags Catalog
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {object} model.CatalogView
// @Failure 404 {object} Response
// @Router /catalog/stalls/{supplierId} [post]
func (s *RestHandler) EnterStall(w http.ResponseWriter, r *http.Request) {
	if err := s.CatalogApp.EnterStall(r.Context(), pathParam(r, "supplierId")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.CatalogApp.View())
}

// LeaveStall handler
// @Summary Back to the supplier grid
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CatalogView
// @Router /catalog/stall [delete]
func (s *RestHandler) LeaveStall(w http.ResponseWriter, r *http.Request) {
	s.CatalogApp.LeaveStall()
	writeSuccess(w, s.CatalogApp.View())
}
