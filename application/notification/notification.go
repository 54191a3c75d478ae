package notification

import (
	"context"
	"sync"

	appsession "github.com/muhammadheryan/micromarket/application/session"
	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	notificationrepo "github.com/muhammadheryan/micromarket/repository/notification"
	"github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/muhammadheryan/micromarket/utils/logger"
	"go.uber.org/zap"
)

type NotificationApp interface {
	List(ctx context.Context) error
	MarkRead(ctx context.Context, notificationID string) error
	View() model.NotificationView
}

type notificationAppImpl struct {
	notificationRepo notificationrepo.NotificationRepository
	session          appsession.Provider

	mu      sync.Mutex
	items   []model.Notification
	loading int
	gen     uint64
}

func NewNotificationApp(notificationRepo notificationrepo.NotificationRepository, session appsession.Provider) NotificationApp {
	return &notificationAppImpl{
		notificationRepo: notificationRepo,
		session:          session,
		items:            []model.Notification{},
	}
}

func (s *notificationAppImpl) List(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	token := s.session.Token()
	if token == "" {
		s.apply(gen, []model.Notification{})
		return nil
	}

	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	items, err := s.notificationRepo.List(ctx, token)

	s.mu.Lock()
	s.loading--
	s.mu.Unlock()
	if err != nil {
		logger.Error("[ListNotifications] error notificationRepo.List", zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgLoadNotifFailed)
	}

	if items == nil {
		items = []model.Notification{}
	}
	s.apply(gen, items)
	return nil
}

func (s *notificationAppImpl) apply(gen uint64, items []model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.items = items
	}
}

// MarkRead acknowledges one notification and re-reads the list; the unread
// count is never adjusted locally.
func (s *notificationAppImpl) MarkRead(ctx context.Context, notificationID string) error {
	token := s.session.Token()
	if token == "" {
		return errors.SetCustomError(constant.ErrLoginRequired)
	}

	if err := s.notificationRepo.MarkRead(ctx, token, notificationID); err != nil {
		logger.Error("[MarkRead] error notificationRepo.MarkRead",
			zap.String("notification_id", notificationID), zap.String("error", err.Error()))
		return errors.FromBackend(err, constant.MsgMarkReadFailed)
	}
	return s.List(ctx)
}

func (s *notificationAppImpl) View() model.NotificationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := append([]model.Notification{}, s.items...)
	return model.NotificationView{
		Items:   items,
		Unread:  model.CountUnread(items),
		Loading: s.loading > 0,
	}
}
