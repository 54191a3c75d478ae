package supplier

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

type SupplierRepository interface {
	List(ctx context.Context, filter model.SupplierFilter) ([]model.Supplier, error)
	GetMyStall(ctx context.Context, token string) (*model.Supplier, error)
	Create(ctx context.Context, token string, req *model.StallRequest) (*model.Supplier, error)
	ListProducts(ctx context.Context, supplierID string, filter model.ProductFilter) ([]model.Product, error)
	ListReviews(ctx context.Context, supplierID string) ([]model.Review, error)
}

func NewSupplierRepository(client marketapi.Doer) SupplierRepository {
	return &API{client: client}
}

const (
	suppliersPath     = "/suppliers"
	myStallPath       = "/suppliers/my-stall"
	productsRoute     = "/suppliers/{id}/products"
	reviewsRoute      = "/suppliers/{id}/reviews"
	supplierItemPaths = "/suppliers/"
)

func (a *API) List(ctx context.Context, filter model.SupplierFilter) ([]model.Supplier, error) {
	items := make([]model.Supplier, 0)
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Path:   suppliersPath,
		Query:  filter.Query(),
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (a *API) GetMyStall(ctx context.Context, token string) (*model.Supplier, error) {
	var stall model.Supplier
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Path:   myStallPath,
		Token:  token,
	}, &stall)
	if err != nil {
		return nil, err
	}
	return &stall, nil
}

func (a *API) Create(ctx context.Context, token string, req *model.StallRequest) (*model.Supplier, error) {
	var stall model.Supplier
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPost,
		Path:   suppliersPath,
		Token:  token,
		Body:   req,
	}, &stall)
	if err != nil {
		return nil, err
	}
	return &stall, nil
}

func (a *API) ListProducts(ctx context.Context, supplierID string, filter model.ProductFilter) ([]model.Product, error) {
	items := make([]model.Product, 0)
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Route:  productsRoute,
		Path:   supplierItemPaths + url.PathEscape(supplierID) + "/products",
		Query:  filter.Query(),
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (a *API) ListReviews(ctx context.Context, supplierID string) ([]model.Review, error) {
	items := make([]model.Review, 0)
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Route:  reviewsRoute,
		Path:   supplierItemPaths + url.PathEscape(supplierID) + "/reviews",
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}
