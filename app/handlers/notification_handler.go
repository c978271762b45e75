package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/middlewares"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
	render              *render.Render
}

func NewNotificationHandler(notificationService *services.NotificationService, rnd *render.Render) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		render:              rnd,
	}
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())

	notifications, err := h.notificationService.ListForUser(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	unread, err := h.notificationService.UnreadCount(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"unreadCount":   unread,
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())
	notificationID := mux.Vars(r)["id"]

	if err := h.notificationService.MarkRead(r.Context(), notificationID, userID); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "notification marked as read"})
}
