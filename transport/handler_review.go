package transport

import (
	"net/http"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	utilsContext "github.com/muhammadheryan/micromarket/utils/context"
	"github.com/muhammadheryan/micromarket/utils/errors"
)

// SubmitReview handler
// @Summary Review a supplier
// @Tags Review
// @Accept json
// @Produce json
// @Param request body model.ReviewRequest true "Review"
// @Success 200 {object} model.Review
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /reviews [post]
func (s *RestHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	user, ok := utilsContext.GetUser(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrLoginRequired))
		return
	}
	if user.Role != constant.RoleVendor {
		writeError(w, errors.WithMessage(constant.ErrForbidden, constant.MsgVendorsOnlyReview))
		return
	}

	var req model.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	review, err := s.ReviewApp.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, review)
}

// SaveReviewDraft handler
// @Summary Keep a half written review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body model.ReviewRequest true "Draft"
// @Success 200 {object} model.ReviewRequest
// @Router /reviews/drafts [put]
func (s *RestHandler) SaveReviewDraft(w http.ResponseWriter, r *http.Request) {
	var req model.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.SupplierID == "" {
		writeError(w, badRequest("supplier_id is required"))
		return
	}

	s.ReviewApp.SaveDraft(req)
	writeSuccess(w, req)
}

// ReviewDraft handler
// @Summary Draft review for a supplier
// @Tags Review
// @Produce json
// @Param supplierId path string true "Supplier ID"
// @Success 200 {object} model.ReviewRequest
// @Failure 404 {object} Response
// @Router /reviews/drafts/{supplierId} [get]
func (s *RestHandler) ReviewDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := s.ReviewApp.Draft(pathParam(r, "supplierId"))
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}
	writeSuccess(w, draft)
}
