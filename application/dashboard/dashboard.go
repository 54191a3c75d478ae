package dashboard

import (
	"context"
	stderrors "errors"
	"slices"
	"sync"

	appsession "github.com/muhammadheryan/micromarket/application/session"
	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	analyticsrepo "github.com/muhammadheryan/micromarket/repository/analytics"
	orderrepo "github.com/muhammadheryan/micromarket/repository/order"
	productrepo "github.com/muhammadheryan/micromarket/repository/product"
	supplierrepo "github.com/muhammadheryan/micromarket/repository/supplier"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
	"github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/muhammadheryan/micromarket/utils/logger"
	validatorx "github.com/muhammadheryan/micromarket/utils/validator"
	"go.uber.org/zap"
)

// ConfirmFunc is asked before a destructive action; false cancels it.
type ConfirmFunc func(prompt string) bool

type DashboardApp interface {
	Load(ctx context.Context) error
	CreateStall(ctx context.Context, req *model.StallRequest) error
	AddProduct(ctx context.Context, form model.ProductForm) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID string, confirm ConfirmFunc) (bool, error)
	SetTab(tab string) error
	Reset()
	View() model.DashboardView
}

type Repositories struct {
	Supplier  supplierrepo.SupplierRepository
	Product   productrepo.ProductRepository
	Analytics analyticsrepo.AnalyticsRepository
	Order     orderrepo.OrderRepository
}

type dashboardAppImpl struct {
	repos   Repositories
	session appsession.Provider

	mu         sync.Mutex
	owner      string
	tab        string
	needsStall bool
	stall      *model.Supplier
	products   []model.Product
	analytics  *model.Analytics
	orders     []model.Order
	form       model.ProductForm
	loading    int
}

func NewDashboardApp(repos Repositories, session appsession.Provider) DashboardApp {
	return &dashboardAppImpl{
		repos:    repos,
		session:  session,
		tab:      constant.TabOverview,
		products: []model.Product{},
		orders:   []model.Order{},
		form:     model.DefaultProductForm(),
	}
}

// supplierToken returns the bearer token of a logged in supplier.
func (s *dashboardAppImpl) supplierToken() (string, error) {
	token := s.session.Token()
	user, ok := s.session.Current()
	if token == "" || !ok {
		return "", errors.SetCustomError(constant.ErrLoginRequired)
	}
	if user.Role != constant.RoleSupplier {
		return "", errors.SetCustomError(constant.ErrForbidden)
	}
	return token, nil
}

// Load reads the supplier's stall and, when it exists, its products,
// analytics and orders. A missing stall is a state, not an error.
func (s *dashboardAppImpl) Load(ctx context.Context) error {
	token, err := s.supplierToken()
	if err != nil {
		return err
	}

	if user, ok := s.session.Current(); ok {
		s.adopt(user.ID)
	}

	s.setLoading(1)
	defer s.setLoading(-1)

	stall, err := s.repos.Supplier.GetMyStall(ctx, token)
	if err != nil {
		if marketapi.IsNotFound(err) {
			s.mu.Lock()
			s.needsStall = true
			s.stall = nil
			s.products = []model.Product{}
			s.analytics = nil
			s.orders = []model.Order{}
			s.mu.Unlock()
			return nil
		}
		logger.Error("[LoadDashboard] error supplierRepo.GetMyStall", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadDashboardFail)
	}

	products, err := s.repos.Product.ListMine(ctx, token)
	if err != nil {
		logger.Error("[LoadDashboard] error productRepo.ListMine", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadDashboardFail)
	}
	analytics, err := s.repos.Analytics.Dashboard(ctx, token)
	if err != nil {
		logger.Error("[LoadDashboard] error analyticsRepo.Dashboard", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadDashboardFail)
	}
	orders, err := s.repos.Order.ListMine(ctx, token)
	if err != nil {
		logger.Error("[LoadDashboard] error orderRepo.ListMine", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadDashboardFail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.needsStall = false
	s.stall = stall
	s.products = nonNilProducts(products)
	s.analytics = analytics
	if orders == nil {
		orders = []model.Order{}
	}
	s.orders = orders
	return nil
}

func (s *dashboardAppImpl) CreateStall(ctx context.Context, req *model.StallRequest) error {
	token, err := s.supplierToken()
	if err != nil {
		return err
	}
	if req == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.WithMessage(constant.ErrInvalidRequest, validatorx.Message(err))
	}

	body := *req
	if body.ImageURL == "" {
		body.ImageURL = constant.DefaultStallImage
	}
	if _, err := s.repos.Supplier.Create(ctx, token, &body); err != nil {
		logger.Error("[CreateStall] error supplierRepo.Create", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgCreateStallFailed)
	}

	return s.Load(ctx)
}

// AddProduct submits the add-product form. The form is kept as typed on
// failure and reset to its defaults on success.
func (s *dashboardAppImpl) AddProduct(ctx context.Context, form model.ProductForm) (*model.Product, error) {
	token, err := s.supplierToken()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.form = form
	s.mu.Unlock()

	if err := validatorx.ValidateStruct(form); err != nil {
		return nil, errors.WithMessage(constant.ErrInvalidRequest, validatorx.Message(err))
	}
	req, err := form.Request()
	if err != nil {
		msg := constant.MsgInvalidQuantity
		if stderrors.Is(err, model.ErrInvalidPrice) {
			msg = constant.MsgInvalidPrice
		}
		return nil, errors.WithMessage(constant.ErrInvalidRequest, msg)
	}

	product, err := s.repos.Product.Create(ctx, token, req)
	if err != nil {
		logger.Error("[AddProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.FromBackend(err, constant.MsgAddProductFailed)
	}

	s.mu.Lock()
	s.form = model.DefaultProductForm()
	s.mu.Unlock()

	if err := s.reloadProducts(ctx, token); err != nil {
		return product, err
	}
	return product, nil
}

// DeleteProduct removes a product after confirm agrees. It reports whether
// the deletion happened.
func (s *dashboardAppImpl) DeleteProduct(ctx context.Context, productID string, confirm ConfirmFunc) (bool, error) {
	token, err := s.supplierToken()
	if err != nil {
		return false, err
	}
	if confirm == nil || !confirm(constant.MsgConfirmDelete) {
		return false, nil
	}

	if err := s.repos.Product.Delete(ctx, token, productID); err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete",
			zap.String("product_id", productID), zap.String("error", err.Error()))
		return false, errors.FromBackend(err, constant.MsgDeleteProductFail)
	}

	return true, s.reloadProducts(ctx, token)
}

func (s *dashboardAppImpl) reloadProducts(ctx context.Context, token string) error {
	products, err := s.repos.Product.ListMine(ctx, token)
	if err != nil {
		logger.Error("[reloadProducts] error productRepo.ListMine", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadProductsFail)
	}
	s.mu.Lock()
	s.products = nonNilProducts(products)
	s.mu.Unlock()
	return nil
}

// Reset discards everything loaded for the previous account.
func (s *dashboardAppImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
	s.owner = ""
}

// adopt binds the state to userID, dropping another account's data first.
func (s *dashboardAppImpl) adopt(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner == userID {
		return
	}
	s.clear()
	s.owner = userID
}

// clear must be called with mu held.
func (s *dashboardAppImpl) clear() {
	s.tab = constant.TabOverview
	s.needsStall = false
	s.stall = nil
	s.products = []model.Product{}
	s.analytics = nil
	s.orders = []model.Order{}
	s.form = model.DefaultProductForm()
}

// SetTab switches the visible section without fetching.
func (s *dashboardAppImpl) SetTab(tab string) error {
	if !slices.Contains(constant.DashboardTabs, tab) {
		return errors.WithMessage(constant.ErrInvalidRequest, constant.MsgUnknownTab)
	}
	s.mu.Lock()
	s.tab = tab
	s.mu.Unlock()
	return nil
}

func (s *dashboardAppImpl) View() model.DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := model.DashboardView{
		Tab:         s.tab,
		NeedsStall:  s.needsStall,
		Products:    append([]model.Product{}, s.products...),
		Orders:      append([]model.Order{}, s.orders...),
		ProductForm: s.form,
		Loading:     s.loading > 0,
	}
	if s.stall != nil {
		stall := *s.stall
		view.Stall = &stall
	}
	if s.analytics != nil {
		analytics := *s.analytics
		view.Analytics = &analytics
	}
	return view
}

func (s *dashboardAppImpl) setLoading(delta int) {
	s.mu.Lock()
	s.loading += delta
	s.mu.Unlock()
}

func nonNilProducts(products []model.Product) []model.Product {
	if products == nil {
		return []model.Product{}
	}
	return products
}
