package order

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
)

type API struct {
	client marketapi.Doer
}

type OrderRepository interface {
	ListMine(ctx context.Context, token string) ([]model.Order, error)
}

func NewOrderRepository(client marketapi.Doer) OrderRepository {
	return &API{client: client}
}

const myOrdersPath = "/orders/my-orders"

func (a *API) ListMine(ctx context.Context, token string) ([]model.Order, error) {
	items := make([]model.Order, 0)
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Path:   myOrdersPath,
		Token:  token,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}
