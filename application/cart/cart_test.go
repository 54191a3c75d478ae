package cart_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	appcart "github.com/muhammadheryan/micromarket/application/cart"
	"github.com/muhammadheryan/micromarket/constant"
	sessionmocks "github.com/muhammadheryan/micromarket/mocks/application/session"
	cartmocks "github.com/muhammadheryan/micromarket/mocks/repository/cart"
	rabbitmocks "github.com/muhammadheryan/micromarket/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
	cerr "github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	vendor  = &model.User{ID: "v1", Role: constant.RoleVendor}
	carrots = model.Product{ID: "p1", SupplierID: "s1", Name: "Carrots", PricePerUnit: 2.00}
	basil   = model.Product{ID: "p2", SupplierID: "s2", Name: "Basil", PricePerUnit: 3.50}
)

func loggedIn(t *testing.T) *sessionmocks.Provider {
	p := sessionmocks.NewProvider(t)
	p.On("Token").Return("tok").Maybe()
	p.On("Current").Return(vendor, true).Maybe()
	return p
}

func anonymous(t *testing.T) *sessionmocks.Provider {
	p := sessionmocks.NewProvider(t)
	p.On("Token").Return("").Maybe()
	p.On("Current").Return(nil, false).Maybe()
	return p
}

func TestCartApp_Load(t *testing.T) {
	type fields struct {
		cartRepo *cartmocks.CartRepository
		session  *sessionmocks.Provider
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     model.CartView
		wantErr  string
	}{
		{
			name:   "success: anonymous cart is empty without a call",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), session: anonymous(t)},
			want:   model.CartView{Items: []model.CartItem{}, TotalText: "0.00"},
		},
		{
			name:   "success: server total is displayed as is",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), session: loggedIn(t)},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "tok").Return(&model.Cart{
					Items:       []model.CartItem{{ProductID: "p1", Quantity: 3, PricePerUnit: 2}},
					TotalAmount: 5.70,
				}, nil).Once()
			},
			want: model.CartView{
				Items:     []model.CartItem{{ProductID: "p1", Quantity: 3, PricePerUnit: 2}},
				ItemCount: 1,
				Total:     5.70,
				TotalText: "5.70",
			},
		},
		{
			name:   "error: load failure keeps previous cart",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), session: loggedIn(t)},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "tok").Return(nil, errors.New("refused")).Once()
			},
			want:    model.CartView{Items: []model.CartItem{}, TotalText: "0.00"},
			wantErr: constant.MsgLoadCartFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(tt.fields.cartRepo, tt.fields.session, nil)

			err := app.Load(context.Background())

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, app.View())
		})
	}
}

func TestCartApp_AddItem(t *testing.T) {
	tests := []struct {
		name      string
		session   func(t *testing.T) *sessionmocks.Provider
		mockCall  func(r *cartmocks.CartRepository, p *rabbitmocks.Publisher)
		wantErr   string
		wantType  constant.ErrorType
		wantTotal float64
	}{
		{
			name:    "success: adds one unit at list price then refetches",
			session: loggedIn,
			mockCall: func(r *cartmocks.CartRepository, p *rabbitmocks.Publisher) {
				r.On("Add", mock.Anything, "tok", &model.AddCartItemRequest{
					ProductID: "p1", SupplierID: "s1", Quantity: 1, PricePerUnit: 2.00,
				}).Return(nil).Once()
				p.On("Publish", mock.Anything, mock.MatchedBy(func(e model.ActivityEvent) bool {
					return e.Type == constant.ActivityCartChanged && e.UserID == "v1" && e.ProductID == "p1"
				})).Return(nil).Once()
				r.On("Get", mock.Anything, "tok").Return(&model.Cart{
					Items:       []model.CartItem{{ProductID: "p1", Quantity: 1, PricePerUnit: 2}},
					TotalAmount: 2.00,
				}, nil).Once()
			},
			wantTotal: 2.00,
		},
		{
			name:     "error: anonymous user is asked to login, no call made",
			session:  anonymous,
			wantErr:  constant.MsgLoginToAddCart,
			wantType: constant.ErrLoginRequired,
		},
		{
			name:    "error: backend rejection shows detail",
			session: loggedIn,
			mockCall: func(r *cartmocks.CartRepository, p *rabbitmocks.Publisher) {
				r.On("Add", mock.Anything, "tok", mock.Anything).
					Return(&marketapi.Error{StatusCode: http.StatusNotFound, Detail: "Product not found"}).Once()
			},
			wantErr:  "Product not found",
			wantType: constant.ErrNotFound,
		},
		{
			name:    "error: generic message without detail",
			session: loggedIn,
			mockCall: func(r *cartmocks.CartRepository, p *rabbitmocks.Publisher) {
				r.On("Add", mock.Anything, "tok", mock.Anything).Return(errors.New("reset by peer")).Once()
			},
			wantErr:  constant.MsgAddCartFailed,
			wantType: constant.ErrBackend,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := cartmocks.NewCartRepository(t)
			pub := rabbitmocks.NewPublisher(t)
			if tt.mockCall != nil {
				tt.mockCall(repo, pub)
			}
			app := appcart.NewCartApp(repo, tt.session(t), pub)

			err := app.AddItem(context.Background(), carrots)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.True(t, cerr.IsType(err, tt.wantType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, app.View().Total)
		})
	}
}

// Two products added, carrots raised to three, basil removed: the total
// shown after every step is the one the backend computed.
func TestCartApp_Scenario(t *testing.T) {
	repo := cartmocks.NewCartRepository(t)
	app := appcart.NewCartApp(repo, loggedIn(t), nil)
	ctx := context.Background()

	repo.On("Add", mock.Anything, "tok", mock.Anything).Return(nil).Twice()
	repo.On("Get", mock.Anything, "tok").Return(&model.Cart{
		Items:       []model.CartItem{{ProductID: "p1", Quantity: 1, PricePerUnit: 2}},
		TotalAmount: 2.00,
	}, nil).Once()
	repo.On("Get", mock.Anything, "tok").Return(&model.Cart{
		Items: []model.CartItem{
			{ProductID: "p1", Quantity: 1, PricePerUnit: 2},
			{ProductID: "p2", Quantity: 1, PricePerUnit: 3.5},
		},
		TotalAmount: 5.50,
	}, nil).Once()

	require.NoError(t, app.AddItem(ctx, carrots))
	require.NoError(t, app.AddItem(ctx, basil))
	view := app.View()
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, "5.50", view.TotalText)

	// the backend applies a bulk discount the client never computes
	repo.On("UpdateQuantity", mock.Anything, "tok", "p1", 2).Return(nil).Once()
	repo.On("Get", mock.Anything, "tok").Return(&model.Cart{
		Items: []model.CartItem{
			{ProductID: "p1", Quantity: 2, PricePerUnit: 2},
			{ProductID: "p2", Quantity: 1, PricePerUnit: 3.5},
		},
		TotalAmount: 7.40,
	}, nil).Once()
	require.NoError(t, app.Increment(ctx, "p1"))
	assert.Equal(t, "7.40", app.View().TotalText)

	repo.On("Remove", mock.Anything, "tok", "p2").Return(nil).Once()
	repo.On("Get", mock.Anything, "tok").Return(&model.Cart{
		Items:       []model.CartItem{{ProductID: "p1", Quantity: 2, PricePerUnit: 2}},
		TotalAmount: 4.00,
	}, nil).Once()
	require.NoError(t, app.Decrement(ctx, "p2"))

	view = app.View()
	assert.Equal(t, 1, view.ItemCount)
	assert.Equal(t, 4.00, view.Total)
}

func TestCartApp_SetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		mockCall func(r *cartmocks.CartRepository)
		wantErr  string
	}{
		{
			name:     "positive quantity updates",
			quantity: 4,
			mockCall: func(r *cartmocks.CartRepository) {
				r.On("UpdateQuantity", mock.Anything, "tok", "p1", 4).Return(nil).Once()
				r.On("Get", mock.Anything, "tok").Return(&model.Cart{}, nil).Once()
			},
		},
		{
			name:     "zero removes",
			quantity: 0,
			mockCall: func(r *cartmocks.CartRepository) {
				r.On("Remove", mock.Anything, "tok", "p1").Return(nil).Once()
				r.On("Get", mock.Anything, "tok").Return(&model.Cart{}, nil).Once()
			},
		},
		{
			name:     "negative removes",
			quantity: -2,
			mockCall: func(r *cartmocks.CartRepository) {
				r.On("Remove", mock.Anything, "tok", "p1").Return(nil).Once()
				r.On("Get", mock.Anything, "tok").Return(&model.Cart{}, nil).Once()
			},
		},
		{
			name:     "update failure is not followed by a refetch",
			quantity: 4,
			mockCall: func(r *cartmocks.CartRepository) {
				r.On("UpdateQuantity", mock.Anything, "tok", "p1", 4).Return(errors.New("boom")).Once()
			},
			wantErr: constant.MsgUpdateCartFailed,
		},
		{
			name:     "remove failure",
			quantity: 0,
			mockCall: func(r *cartmocks.CartRepository) {
				r.On("Remove", mock.Anything, "tok", "p1").Return(errors.New("boom")).Once()
			},
			wantErr: constant.MsgRemoveCartFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := cartmocks.NewCartRepository(t)
			tt.mockCall(repo)
			app := appcart.NewCartApp(repo, loggedIn(t), nil)

			err := app.SetQuantity(context.Background(), "p1", tt.quantity)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, app.View().Items)
		})
	}
}

func TestCartApp_MutationsRequireLogin(t *testing.T) {
	app := appcart.NewCartApp(cartmocks.NewCartRepository(t), anonymous(t), nil)
	ctx := context.Background()

	for _, err := range []error{
		app.RemoveItem(ctx, "p1"),
		app.SetQuantity(ctx, "p1", 2),
		app.Increment(ctx, "p1"),
	} {
		assert.True(t, cerr.IsType(err, constant.ErrLoginRequired))
	}
}
