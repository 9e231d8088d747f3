package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/models"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/monitoring"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/repositories"
)

const (
	// SessionName is the cookie holding the signed session.
	SessionName = "session-cookie"
	// CurrUserKey is the session key holding the authenticated user's id.
	CurrUserKey = "curr_user"
)

type Handler struct {
	users    repositories.UserStore
	messages repositories.MessageStore
	store    sessions.Store
}

func NewHandler(users repositories.UserStore, messages repositories.MessageStore, store sessions.Store) *Handler {
	return &Handler{
		users:    users,
		messages: messages,
		store:    store,
	}
}

// currentUser resolves the session to a user row. A missing session key or
// an id with no matching user both mean "not authenticated".
func (h *Handler) currentUser(r *http.Request) *models.User {
	session, _ := h.store.Get(r, SessionName)
	if session == nil {
		return nil
	}

	raw, ok := session.Values[CurrUserKey]
	if !ok {
		return nil
	}

	var id uint
	switch v := raw.(type) {
	case uint:
		id = v
	case int:
		id = uint(v)
	case int64:
		id = uint(v)
	default:
		return nil
	}

	user, err := h.users.ByID(id)
	if err != nil {
		return nil
	}
	return user
}

func (h *Handler) loginSession(w http.ResponseWriter, r *http.Request, userID uint) {
	session, _ := h.store.Get(r, SessionName)
	session.Values[CurrUserKey] = userID
	if err := session.Save(r, w); err != nil {
		logrus.WithError(err).Error("Failed to save session")
	}
}

func (h *Handler) logoutSession(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, SessionName)
	delete(session.Values, CurrUserKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		logrus.WithError(err).Error("Failed to clear session")
	}
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logrus.WithError(err).WithField("template", name).Error("Failed to render template")
	}
}

// unauthorized renders the "Access unauthorized." page. Authorization
// failures are a user-visible message, never a 5xx.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	monitoring.UnauthorizedAccess.WithLabelValues(r.URL.Path).Inc()
	h.render(w, http.StatusOK, "unauthorized", nil)
}

func (h *Handler) notFound(w http.ResponseWriter) {
	h.render(w, http.StatusNotFound, "not_found", nil)
}

// pathID reads the {id} route variable.
func pathID(r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
