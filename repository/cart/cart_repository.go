package cart

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
)

type API struct {
	client marketapi.Doer
}

type CartRepository interface {
	Get(ctx context.Context, token string) (*model.Cart, error)
	Add(ctx context.Context, token string, item *model.AddCartItemRequest) error
	Remove(ctx context.Context, token, productID string) error
	UpdateQuantity(ctx context.Context, token, productID string, quantity int) error
}

func NewCartRepository(client marketapi.Doer) CartRepository {
	return &API{client: client}
}

const (
	cartPath    = "/cart"
	addPath     = "/cart/add"
	removeRoute = "/cart/remove/{productId}"
	updateRoute = "/cart/update/{productId}"
)

func (a *API) Get(ctx context.Context, token string) (*model.Cart, error) {
	var c model.Cart
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Path:   cartPath,
		Token:  token,
	}, &c)
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []model.CartItem{}
	}
	return &c, nil
}

func (a *API) Add(ctx context.Context, token string, item *model.AddCartItemRequest) error {
	return a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPost,
		Path:   addPath,
		Token:  token,
		Body:   item,
	}, nil)
}

func (a *API) Remove(ctx context.Context, token, productID string) error {
	return a.client.Do(ctx, marketapi.Request{
		Method: http.MethodDelete,
		Route:  removeRoute,
		Path:   "/cart/remove/" + url.PathEscape(productID),
		Token:  token,
	}, nil)
}

func (a *API) UpdateQuantity(ctx context.Context, token, productID string, quantity int) error {
	return a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPut,
		Route:  updateRoute,
		Path:   "/cart/update/" + url.PathEscape(productID),
		Query:  url.Values{"quantity": {strconv.Itoa(quantity)}},
		Token:  token,
	}, nil)
}
