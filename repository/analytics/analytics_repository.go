package analytics

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
)

type API struct {
	client marketapi.Doer
}

type AnalyticsRepository interface {
	Dashboard(ctx context.Context, token string) (*model.Analytics, error)
}

func NewAnalyticsRepository(client marketapi.Doer) AnalyticsRepository {
	return &API{client: client}
}

const dashboardPath = "/analytics/dashboard"

func (a *API) Dashboard(ctx context.Context, token string) (*model.Analytics, error) {
	var res model.Analytics
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Path:   dashboardPath,
		Token:  token,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
