package handler

import (
	"net/http"

	"github.com/osse101/Milestone_Go/internal/domain"
)

// Notification list defaults
const (
	DefaultNotificationLimit = 20
	MaxNotificationLimit     = 100
)

// NotificationFeed returns recent notifications, newest first
type NotificationFeed interface {
	Recent(limit int) []domain.Notification
}

// HandleNotifications lists recent notifications
// @Summary List notifications
// @Tags progress
// @Produce json
// @Param limit query int false "Maximum results (default 20, max 100)"
// @Success 200 {array} domain.Notification
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/notifications [get]
func HandleNotifications(feed NotificationFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, DefaultNotificationLimit, MaxNotificationLimit)
		if !ok {
			return
		}
		items := feed.Recent(limit)
		if items == nil {
			items = []domain.Notification{}
		}
		respondJSON(w, http.StatusOK, items)
	}
}
