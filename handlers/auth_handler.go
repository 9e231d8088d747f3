package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/dto"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/monitoring"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/repositories"
)

// Signup renders the signup form on GET and creates the account on POST.
// Validation problems re-render the form; a successful signup logs the new
// user in and redirects home.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, http.StatusOK, "signup_form", dto.FormView{})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusOK, "signup_form", dto.FormView{Error: "Invalid form submission"})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	imageURL := strings.TrimSpace(r.FormValue("image_url"))

	switch {
	case username == "":
		h.render(w, http.StatusOK, "signup_form", dto.FormView{Error: "You have to enter a username"})
		return
	case email == "" || !strings.Contains(email, "@"):
		h.render(w, http.StatusOK, "signup_form", dto.FormView{Error: "You have to enter a valid email address"})
		return
	}

	user, err := h.users.Signup(username, email, password, imageURL)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPasswordRequired):
			h.render(w, http.StatusOK, "signup_form", dto.FormView{Error: "You have to enter a password"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			h.render(w, http.StatusOK, "signup_form", dto.FormView{Error: "Username or email already taken"})
		default:
			logrus.WithError(err).Error("Signup failed")
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	monitoring.SignupSuccess.Inc()
	h.loginSession(w, r, user.ID)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Login verifies credentials on POST. Failures get the same answer whether
// the username is unknown or the password is wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, http.StatusOK, "login_form", dto.FormView{})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusOK, "login_form", dto.FormView{Error: "Invalid form submission"})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, ok := h.users.Authenticate(username, password)
	if !ok {
		monitoring.LoginFailure.WithLabelValues("invalid_credentials").Inc()
		h.render(w, http.StatusOK, "login_form", dto.FormView{Error: "Invalid credentials."})
		return
	}

	monitoring.LoginSuccess.Inc()
	h.loginSession(w, r, user.ID)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout clears the session and returns to the login page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.logoutSession(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}
