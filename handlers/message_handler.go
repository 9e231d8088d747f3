package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/dto"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/models"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/monitoring"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/repositories"
)

// Home renders the timeline for a logged-in user and the welcome page for
// everyone else.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.render(w, http.StatusOK, "welcome", nil)
		return
	}

	messages, err := h.messages.Timeline(user.ID, 100)
	if err != nil {
		logrus.WithError(err).Error("Failed to load timeline")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "timeline", dto.TimelineView{Viewer: user, Messages: messages})
}

// AddMessage creates a warble owned by the session user. Without a valid
// session no row is created and the unauthorized page is rendered.
func (h *Handler) AddMessage(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.unauthorized(w, r)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, http.StatusOK, "message_form", dto.FormView{})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusOK, "message_form", dto.FormView{Error: "Invalid form submission"})
		return
	}

	message := &models.Message{
		Text:   strings.TrimSpace(r.FormValue("text")),
		UserID: user.ID,
	}
	if err := h.messages.Create(message); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTextRequired):
			h.render(w, http.StatusOK, "message_form", dto.FormView{Error: "You have to enter a message"})
		case errors.Is(err, repositories.ErrTextTooLong):
			h.render(w, http.StatusOK, "message_form", dto.FormView{Error: "Messages are limited to 140 characters"})
		default:
			logrus.WithError(err).Error("Failed to create message")
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	monitoring.MessagesPosted.Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusFound)
}

// ShowMessage renders a single message, or a 404 page when the id has no
// row.
func (h *Handler) ShowMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	message, err := h.messages.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.notFound(w)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	likes, err := h.messages.LikeCount(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "message_show", dto.MessageView{Message: message, Likes: likes})
}

// DeleteMessage removes a message. Only the owner may delete; any other
// caller gets the unauthorized page and the row is preserved.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.unauthorized(w, r)
		return
	}

	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	message, err := h.messages.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.notFound(w)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	if message.UserID != user.ID {
		h.unauthorized(w, r)
		return
	}

	if err := h.messages.Delete(id); err != nil {
		logrus.WithError(err).Error("Failed to delete message")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.MessagesDeleted.Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusFound)
}

// ToggleLike flips the (user, message) like edge and redirects back to the
// timeline.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.unauthorized(w, r)
		return
	}

	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}
	if _, err := h.messages.ByID(id); err != nil {
		h.notFound(w)
		return
	}

	if _, err := h.messages.ToggleLike(user.ID, id); err != nil {
		logrus.WithError(err).Error("Failed to toggle like")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.LikesToggled.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}
