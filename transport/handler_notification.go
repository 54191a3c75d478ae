package transport

import "net/http"

// Notifications handler
// @Summary Notification panel
// @Tags Notification
// @Produce json
// @Success 200 {object} model.NotificationView
// @Failure 401 {object} Response
// @Router /notifications [get]
func (s *RestHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.NotificationApp.View())
}

// RefreshNotifications handler
// @Summary Re-read notifications
// @Tags Notification
// @Produce json
// @Success 200 {object} model.NotificationView
// @Router /notifications/refresh [post]
func (s *RestHandler) RefreshNotifications(w http.ResponseWriter, r *http.Request) {
	if err := s.NotificationApp.List(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.NotificationApp.View())
}

// MarkNotificationRead handler
// @Summary Mark a notification read
// @Tags Notification
// @Produce json
// @Param notificationId path string true "Notification ID"
// @Success 200 {object} model.NotificationView
// @Failure 404 {object} Response
// @Router /notifications/{notificationId}/read [post]
func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := s.NotificationApp.MarkRead(r.Context(), pathParam(r, "notificationId")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.NotificationApp.View())
}
