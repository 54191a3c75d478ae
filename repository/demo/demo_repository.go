package demo

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
)

type API struct {
	client marketapi.Doer
}

// DemoRepository seeds demonstration data on the backend.
type DemoRepository interface {
	Init(ctx context.Context) (*model.MessageResponse, error)
}

func NewDemoRepository(client marketapi.Doer) DemoRepository {
	return &API{client: client}
}

const initPath = "/demo/init"

func (a *API) Init(ctx context.Context) (*model.MessageResponse, error) {
	var res model.MessageResponse
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPost,
		Path:   initPath,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
