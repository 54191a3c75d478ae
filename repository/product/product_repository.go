package product

import (
	"context"
	"net/http"
	"net/url"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
)

type API struct {
	client marketapi.Doer
}

type ProductRepository interface {
	ListMine(ctx context.Context, token string) ([]model.Product, error)
	Create(ctx context.Context, token string, req *model.CreateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, token, productID string) error
}

func NewProductRepository(client marketapi.Doer) ProductRepository {
	return &API{client: client}
}

const (
	productsPath   = "/products"
	myProductsPath = "/products/my-products"
	productRoute   = "/products/{id}"
)

func (a *API) ListMine(ctx context.Context, token string) ([]model.Product, error) {
	items := make([]model.Product, 0)
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Path:   myProductsPath,
		Token:  token,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (a *API) Create(ctx context.Context, token string, req *model.CreateProductRequest) (*model.Product, error) {
	var p model.Product
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPost,
		Path:   productsPath,
		Token:  token,
		Body:   req,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *API) Delete(ctx context.Context, token, productID string) error {
	return a.client.Do(ctx, marketapi.Request{
		Method: http.MethodDelete,
		Route:  productRoute,
		Path:   productsPath + "/" + url.PathEscape(productID),
		Token:  token,
	}, nil)
}
