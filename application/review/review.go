package review

import (
	"context"
	"sync"

	appsession "github.com/muhammadheryan/micromarket/application/session"
	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	reviewrepo "github.com/muhammadheryan/micromarket/repository/review"
	"github.com/muhammadheryan/micromarket/thirdparty/rabbitmq"
	"github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/muhammadheryan/micromarket/utils/logger"
	validatorx "github.com/muhammadheryan/micromarket/utils/validator"
	"go.uber.org/zap"
)

// Catalog is refreshed after a review lands so ratings and the review list
// reflect it.
type Catalog interface {
	RefreshSuppliers(ctx context.Context) error
	RefreshReviews(ctx context.Context, supplierID string) error
	ActiveSupplierID() string
}

type ReviewApp interface {
	Submit(ctx context.Context, req *model.ReviewRequest) (*model.Review, error)
	SaveDraft(req model.ReviewRequest)
	Draft(supplierID string) (model.ReviewRequest, bool)
	Reset()
}

type reviewAppImpl struct {
	reviewRepo reviewrepo.ReviewRepository
	session    appsession.Provider
	catalog    Catalog
	publisher  rabbitmq.Publisher

	mu     sync.Mutex
	owner  string
	drafts map[string]model.ReviewRequest
}

// NewReviewApp builds the review submitter. publisher may be nil.
func NewReviewApp(reviewRepo reviewrepo.ReviewRepository, session appsession.Provider, catalog Catalog, publisher rabbitmq.Publisher) ReviewApp {
	return &reviewAppImpl{
		reviewRepo: reviewRepo,
		session:    session,
		catalog:    catalog,
		publisher:  publisher,
		drafts:     make(map[string]model.ReviewRequest),
	}
}

// Submit posts a review. Until the backend accepts it the form stays
// available as a draft.
func (s *reviewAppImpl) Submit(ctx context.Context, req *model.ReviewRequest) (*model.Review, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	s.SaveDraft(*req)

	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.WithMessage(constant.ErrInvalidRequest, validatorx.Message(err))
	}

	token := s.session.Token()
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrLoginRequired)
	}

	review, err := s.reviewRepo.Create(ctx, token, req)
	if err != nil {
		logger.Error("[SubmitReview] error reviewRepo.Create",
			zap.String("supplier_id", req.SupplierID), zap.String("error", err.Error()))
		return nil, errors.FromBackend(err, constant.MsgReviewFailed)
	}

	s.mu.Lock()
	delete(s.drafts, req.SupplierID)
	s.mu.Unlock()

	s.publish(ctx, req.SupplierID)

	// the review is stored; refresh failures only leave stale ratings
	if err := s.catalog.RefreshSuppliers(ctx); err != nil {
		logger.Warn("[SubmitReview] error catalog.RefreshSuppliers", zap.String("error", err.Error()))
	}
	if s.catalog.ActiveSupplierID() == req.SupplierID {
		if err := s.catalog.RefreshReviews(ctx, req.SupplierID); err != nil {
			logger.Warn("[SubmitReview] error catalog.RefreshReviews", zap.String("error", err.Error()))
		}
	}

	return review, nil
}

// SaveDraft keeps an unsent review for the current account. Drafts of a
// previous account are dropped.
func (s *reviewAppImpl) SaveDraft(req model.ReviewRequest) {
	owner := s.userID()

	s.mu.Lock()
	defer s.mu.Unlock()
	if owner != s.owner {
		s.drafts = make(map[string]model.ReviewRequest)
		s.owner = owner
	}
	s.drafts[req.SupplierID] = req
}

func (s *reviewAppImpl) Draft(supplierID string) (model.ReviewRequest, bool) {
	owner := s.userID()

	s.mu.Lock()
	defer s.mu.Unlock()
	if owner != s.owner {
		return model.ReviewRequest{}, false
	}
	d, ok := s.drafts[supplierID]
	return d, ok
}

// Reset forgets every draft.
func (s *reviewAppImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = make(map[string]model.ReviewRequest)
	s.owner = ""
}

func (s *reviewAppImpl) userID() string {
	if user, ok := s.session.Current(); ok && user != nil {
		return user.ID
	}
	return ""
}

func (s *reviewAppImpl) publish(ctx context.Context, supplierID string) {
	if s.publisher == nil {
		return
	}
	event := model.ActivityEvent{
		Type:       constant.ActivityReviewSubmit,
		SupplierID: supplierID,
	}
	if user, ok := s.session.Current(); ok {
		event.UserID = user.ID
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("[SubmitReview] error publisher.Publish", zap.String("error", err.Error()))
	}
}
