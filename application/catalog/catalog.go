package catalog

import (
	"context"
	"sync"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	demorepo "github.com/muhammadheryan/micromarket/repository/demo"
	supplierrepo "github.com/muhammadheryan/micromarket/repository/supplier"
	"github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/muhammadheryan/micromarket/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	Bootstrap(ctx context.Context) error
	SetSupplierFilter(ctx context.Context, filter model.SupplierFilter) error
	SetProductFilter(ctx context.Context, filter model.ProductFilter) error
	ListSuppliers(ctx context.Context) error
	RefreshSuppliers(ctx context.Context) error
	EnterStall(ctx context.Context, supplierID string) error
	LeaveStall()
	RefreshReviews(ctx context.Context, supplierID string) error
	ActiveSupplierID() string
	Product(productID string) (*model.Product, bool)
	View() model.CatalogView
}

type catalogAppImpl struct {
	supplierRepo supplierrepo.SupplierRepository
	demoRepo     demorepo.DemoRepository
	seedOnce     sync.Once

	mu             sync.Mutex
	supplierFilter model.SupplierFilter
	productFilter  model.ProductFilter
	suppliers      []model.Supplier
	listed         bool
	active         *model.Supplier
	products       []model.Product
	reviews        []model.Review
	loading        int
	// generation counters; a response is applied only if no newer request
	// of the same kind was issued meanwhile
	supplierGen uint64
	productGen  uint64
	reviewGen   uint64
}

// NewCatalogApp builds the marketplace browser. A nil demoRepo disables
// demo seeding.
func NewCatalogApp(supplierRepo supplierrepo.SupplierRepository, demoRepo demorepo.DemoRepository) CatalogApp {
	return &catalogAppImpl{
		supplierRepo: supplierRepo,
		demoRepo:     demoRepo,
		suppliers:    []model.Supplier{},
		products:     []model.Product{},
		reviews:      []model.Review{},
	}
}

// Bootstrap seeds demo data on the first call only, then lists suppliers.
// Seeding failures never block the listing.
func (s *catalogAppImpl) Bootstrap(ctx context.Context) error {
	s.seedOnce.Do(func() {
		if s.demoRepo == nil {
			return
		}
		resp, err := s.demoRepo.Init(ctx)
		if err != nil {
			logger.Warn("[Bootstrap] error demoRepo.Init", zap.String("error", err.Error()))
			return
		}
		if resp != nil {
			logger.Info("[Bootstrap] demo data ready", zap.String("message", resp.Message))
		}
	})
	return s.ListSuppliers(ctx)
}

func (s *catalogAppImpl) SetSupplierFilter(ctx context.Context, filter model.SupplierFilter) error {
	s.mu.Lock()
	s.supplierFilter = filter
	s.mu.Unlock()
	return s.ListSuppliers(ctx)
}

func (s *catalogAppImpl) SetProductFilter(ctx context.Context, filter model.ProductFilter) error {
	s.mu.Lock()
	s.productFilter = filter
	active := s.active
	s.mu.Unlock()

	if active == nil {
		return nil
	}
	return s.loadProducts(ctx, active.ID)
}

func (s *catalogAppImpl) ListSuppliers(ctx context.Context) error {
	s.mu.Lock()
	s.supplierGen++
	gen := s.supplierGen
	filter := s.supplierFilter
	s.loading++
	s.mu.Unlock()

	suppliers, err := s.supplierRepo.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if err != nil {
		logger.Error("[ListSuppliers] error supplierRepo.List", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadSuppliersFail)
	}
	if gen != s.supplierGen {
		return nil
	}
	if suppliers == nil {
		suppliers = []model.Supplier{}
	}
	s.suppliers = suppliers
	s.listed = true

	// keep the entered stall's record (rating, review count) current
	if s.active != nil {
		for i := range suppliers {
			if suppliers[i].ID == s.active.ID {
				sup := suppliers[i]
				s.active = &sup
				break
			}
		}
	}
	return nil
}

func (s *catalogAppImpl) RefreshSuppliers(ctx context.Context) error {
	return s.ListSuppliers(ctx)
}

// EnterStall opens one supplier of the current listing and loads its
// products and reviews.
func (s *catalogAppImpl) EnterStall(ctx context.Context, supplierID string) error {
	s.mu.Lock()
	var found *model.Supplier
	for i := range s.suppliers {
		if s.suppliers[i].ID == supplierID {
			sup := s.suppliers[i]
			found = &sup
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return errors.WithMessage(constant.ErrNotFound, constant.MsgSupplierNotInList)
	}
	s.active = found
	s.products = []model.Product{}
	s.reviews = []model.Review{}
	s.mu.Unlock()

	// products and reviews load independently; the first failure is reported
	productErr := s.loadProducts(ctx, supplierID)
	reviewErr := s.RefreshReviews(ctx, supplierID)
	if productErr != nil {
		return productErr
	}
	return reviewErr
}

func (s *catalogAppImpl) LeaveStall() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	s.products = []model.Product{}
	s.reviews = []model.Review{}
	s.productGen++
	s.reviewGen++
}

func (s *catalogAppImpl) loadProducts(ctx context.Context, supplierID string) error {
	s.mu.Lock()
	s.productGen++
	gen := s.productGen
	filter := s.productFilter
	s.loading++
	s.mu.Unlock()

	products, err := s.supplierRepo.ListProducts(ctx, supplierID, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if err != nil {
		logger.Error("[loadProducts] error supplierRepo.ListProducts",
			zap.String("supplier_id", supplierID), zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadProductsFail)
	}
	if gen != s.productGen || s.active == nil || s.active.ID != supplierID {
		return nil
	}
	if products == nil {
		products = []model.Product{}
	}
	s.products = products
	return nil
}

func (s *catalogAppImpl) RefreshReviews(ctx context.Context, supplierID string) error {
	s.mu.Lock()
	s.reviewGen++
	gen := s.reviewGen
	s.mu.Unlock()

	reviews, err := s.supplierRepo.ListReviews(ctx, supplierID)
	if err != nil {
		logger.Error("[RefreshReviews] error supplierRepo.ListReviews",
			zap.String("supplier_id", supplierID), zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadReviewsFail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.reviewGen || s.active == nil || s.active.ID != supplierID {
		return nil
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	s.reviews = reviews
	return nil
}

func (s *catalogAppImpl) ActiveSupplierID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ""
	}
	return s.active.ID
}

// Product looks a product up among the ones currently displayed.
func (s *catalogAppImpl) Product(productID string) (*model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == productID {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

func (s *catalogAppImpl) View() model.CatalogView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := model.CatalogView{
		Suppliers:      append([]model.Supplier{}, s.suppliers...),
		SupplierFilter: s.supplierFilter,
		ProductFilter:  s.productFilter,
		Products:       make([]model.ProductCard, 0, len(s.products)),
		Reviews:        append([]model.Review{}, s.reviews...),
		Loading:        s.loading > 0,
	}
	if s.listed && len(s.suppliers) == 0 {
		view.Empty = true
		view.EmptyMessage = constant.MsgNoSuppliersMatch
	}
	if s.active != nil {
		active := *s.active
		view.ActiveSupplier = &active
	}
	for _, p := range s.products {
		view.Products = append(view.Products, model.NewProductCard(p))
	}
	return view
}
