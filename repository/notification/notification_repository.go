package notification

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

type NotificationRepository interface {
	List(ctx context.Context, token string) ([]model.Notification, error)
	MarkRead(ctx context.Context, token, notificationID string) error
}

func NewNotificationRepository(client marketapi.Doer) NotificationRepository {
	return &API{client: client}
}

const (
	notificationsPath = "/notifications"
	markReadRoute     = "/notifications/{id}/read"
)

func (a *API) List(ctx context.Context, token string) ([]model.Notification, error) {
	items := make([]model.Notification, 0)
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodGet,
		Path:   notificationsPath,
		Token:  token,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (a *API) MarkRead(ctx context.Context, token, notificationID string) error {
	return a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPut,
		Route:  markReadRoute,
		Path:   notificationsPath + "/" + url.PathEscape(notificationID) + "/read",
		Token:  token,
		Body:   struct{}{},
	}, nil)
}
