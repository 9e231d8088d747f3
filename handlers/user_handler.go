package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/dto"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/models"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/monitoring"
)

// ListUsers renders the user index, optionally filtered by a username
// substring via ?q=.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	var (
		users []models.User
		err   error
	)
	if q == "" {
		users, err = h.users.All()
	} else {
		users, err = h.users.Search(q)
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to list users")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "users_index", dto.UserListView{Users: users, Query: q})
}

// ShowUser renders a profile page with the four stat counters and the
// user's messages.
func (h *Handler) ShowUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	user, err := h.users.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.notFound(w)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	stats, err := h.profileStats(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	messages, err := h.messages.ByUserID(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "profile", dto.ProfileView{
		User:     user,
		Stats:    stats,
		Messages: messages,
		Viewer:   h.currentUser(r),
	})
}

func (h *Handler) profileStats(id uint) (dto.Stats, error) {
	var stats dto.Stats
	var err error
	if stats.Messages, err = h.users.CountMessages(id); err != nil {
		return stats, err
	}
	if stats.Following, err = h.users.CountFollowing(id); err != nil {
		return stats, err
	}
	if stats.Followers, err = h.users.CountFollowers(id); err != nil {
		return stats, err
	}
	stats.Likes, err = h.users.CountLikes(id)
	return stats, err
}

// ShowFollowing lists the users the profile owner follows.
func (h *Handler) ShowFollowing(w http.ResponseWriter, r *http.Request) {
	h.showRelations(w, r, "Following", h.users.Following)
}

// ShowFollowers lists the profile owner's followers.
func (h *Handler) ShowFollowers(w http.ResponseWriter, r *http.Request) {
	h.showRelations(w, r, "Followers", h.users.Followers)
}

func (h *Handler) showRelations(w http.ResponseWriter, r *http.Request, title string, relation func(uint) ([]models.User, error)) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	user, err := h.users.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.notFound(w)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	users, err := relation(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "follow_list", dto.ProfileView{User: user, Users: users, Title: title})
}

// ShowLikes lists the messages the profile owner has liked.
func (h *Handler) ShowLikes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	user, err := h.users.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.notFound(w)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	messages, err := h.users.LikedMessages(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "likes_list", dto.ProfileView{User: user, Messages: messages})
}

// FollowUser toggles a follow edge from the session user to the target.
func (h *Handler) FollowUser(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.unauthorized(w, r)
		return
	}

	targetID, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}
	if _, err := h.users.ByID(targetID); err != nil {
		h.notFound(w)
		return
	}

	if _, err := h.users.ToggleFollow(user.ID, targetID); err != nil {
		logrus.WithError(err).Error("Failed to toggle follow")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.FollowsToggled.Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%d/following", user.ID), http.StatusFound)
}

// StopFollowing removes a follow edge unconditionally.
func (h *Handler) StopFollowing(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.unauthorized(w, r)
		return
	}

	targetID, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	if err := h.users.Unfollow(user.ID, targetID); err != nil {
		logrus.WithError(err).Error("Failed to unfollow")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%d/following", user.ID), http.StatusFound)
}

// DeleteUser removes the session user's account and everything owned by it,
// then clears the session.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.unauthorized(w, r)
		return
	}

	if err := h.users.Delete(user.ID); err != nil {
		logrus.WithError(err).Error("Failed to delete user")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.logoutSession(w, r)
	http.Redirect(w, r, "/signup", http.StatusFound)
}
