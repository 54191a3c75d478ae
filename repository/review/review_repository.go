package review

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
)

type API struct {
	client marketapi.Doer
}

type ReviewRepository interface {
	Create(ctx context.Context, token string, req *model.ReviewRequest) (*model.Review, error)
}

func NewReviewRepository(client marketapi.Doer) ReviewRepository {
	return &API{client: client}
}

const reviewsPath = "/reviews"

func (a *API) Create(ctx context.Context, token string, req *model.ReviewRequest) (*model.Review, error) {
	var r model.Review
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPost,
		Path:   reviewsPath,
		Token:  token,
		Body:   req,
	}, &r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
