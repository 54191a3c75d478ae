package cart

import (
	"context"
	"sync"

	appsession "github.com/muhammadheryan/micromarket/application/session"
	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	cartrepo "github.com/muhammadheryan/micromarket/repository/cart"
	"github.com/muhammadheryan/micromarket/thirdparty/rabbitmq"
	"github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/muhammadheryan/micromarket/utils/logger"
	"go.uber.org/zap"
)

// CartApp mirrors the server-held cart. Every acknowledged mutation is
// followed by a fresh read so the displayed total is always the backend's.
type CartApp interface {
	Load(ctx context.Context) error
	AddItem(ctx context.Context, product model.Product) error
	RemoveItem(ctx context.Context, productID string) error
	SetQuantity(ctx context.Context, productID string, quantity int) error
	Increment(ctx context.Context, productID string) error
	Decrement(ctx context.Context, productID string) error
	View() model.CartView
}

type cartAppImpl struct {
	cartRepo  cartrepo.CartRepository
	session   appsession.Provider
	publisher rabbitmq.Publisher

	mu      sync.Mutex
	cart    model.Cart
	loading int
	gen     uint64
}

// NewCartApp builds the cart synchronizer. publisher may be nil.
func NewCartApp(cartRepo cartrepo.CartRepository, session appsession.Provider, publisher rabbitmq.Publisher) CartApp {
	return &cartAppImpl{
		cartRepo:  cartRepo,
		session:   session,
		publisher: publisher,
		cart:      model.Cart{Items: []model.CartItem{}},
	}
}

func (s *cartAppImpl) Load(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	token := s.session.Token()
	if token == "" {
		s.mu.Lock()
		if gen == s.gen {
			s.cart = model.Cart{Items: []model.CartItem{}}
		}
		s.mu.Unlock()
		return nil
	}

	s.setLoading(1)
	cart, err := s.cartRepo.Get(ctx, token)
	s.setLoading(-1)
	if err != nil {
		logger.Error("[LoadCart] error cartRepo.Get", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadCartFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil
	}
	if cart == nil {
		cart = &model.Cart{}
	}
	s.cart = *cart
	if s.cart.Items == nil {
		s.cart.Items = []model.CartItem{}
	}
	return nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, product model.Product) error {
	token := s.session.Token()
	if token == "" {
		return errors.WithMessage(constant.ErrLoginRequired, constant.MsgLoginToAddCart)
	}

	err := s.cartRepo.Add(ctx, token, &model.AddCartItemRequest{
		ProductID:    product.ID,
		SupplierID:   product.SupplierID,
		Quantity:     1,
		PricePerUnit: product.PricePerUnit,
	})
	if err != nil {
		logger.Error("[AddItem] error cartRepo.Add",
			zap.String("product_id", product.ID), zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgAddCartFailed)
	}

	s.publish(ctx, product.ID, product.SupplierID)
	return s.Load(ctx)
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, productID string) error {
	token := s.session.Token()
	if token == "" {
		return errors.SetCustomError(constant.ErrLoginRequired)
	}

	if err := s.cartRepo.Remove(ctx, token, productID); err != nil {
		logger.Error("[RemoveItem] error cartRepo.Remove",
			zap.String("product_id", productID), zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgRemoveCartFailed)
	}

	s.publish(ctx, productID, "")
	return s.Load(ctx)
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *cartAppImpl) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	token := s.session.Token()
	if token == "" {
		return errors.SetCustomError(constant.ErrLoginRequired)
	}

	if err := s.cartRepo.UpdateQuantity(ctx, token, productID, quantity); err != nil {
		logger.Error("[SetQuantity] error cartRepo.UpdateQuantity",
			zap.String("product_id", productID),
			zap.Int("quantity", quantity),
			zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgUpdateCartFailed)
	}

	s.publish(ctx, productID, "")
	return s.Load(ctx)
}

func (s *cartAppImpl) Increment(ctx context.Context, productID string) error {
	return s.SetQuantity(ctx, productID, s.displayed(productID)+1)
}

func (s *cartAppImpl) Decrement(ctx context.Context, productID string) error {
	return s.SetQuantity(ctx, productID, s.displayed(productID)-1)
}

func (s *cartAppImpl) displayed(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Quantity(productID)
}

func (s *cartAppImpl) View() model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := append([]model.CartItem{}, s.cart.Items...)
	return model.CartView{
		Items:     items,
		ItemCount: len(items),
		Total:     s.cart.TotalAmount,
		TotalText: model.FormatAmount(s.cart.TotalAmount),
		Loading:   s.loading > 0,
	}
}

func (s *cartAppImpl) setLoading(delta int) {
	s.mu.Lock()
	s.loading += delta
	s.mu.Unlock()
}

func (s *cartAppImpl) publish(ctx context.Context, productID, supplierID string) {
	if s.publisher == nil {
		return
	}
	event := model.ActivityEvent{
		Type:       constant.ActivityCartChanged,
		ProductID:  productID,
		SupplierID: supplierID,
	}
	if user, ok := s.session.Current(); ok {
		event.UserID = user.ID
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("[Cart] error publisher.Publish", zap.String("error", err.Error()))
	}
}
