package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/handlers"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(h *handlers.Handler) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Home).Methods("GET")

	// Auth routes
	router.HandleFunc("/signup", h.Signup).Methods("GET", "POST")
	router.HandleFunc("/login", h.Login).Methods("GET", "POST")
	router.HandleFunc("/logout", h.Logout).Methods("GET")

	// User routes
	router.HandleFunc("/users", h.ListUsers).Methods("GET")
	router.HandleFunc("/users/delete", h.DeleteUser).Methods("POST")
	router.HandleFunc("/users/follow/{id:[0-9]+}", h.FollowUser).Methods("POST")
	router.HandleFunc("/users/stop-following/{id:[0-9]+}", h.StopFollowing).Methods("POST")
	router.HandleFunc("/users/{id:[0-9]+}", h.ShowUser).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/following", h.ShowFollowing).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/followers", h.ShowFollowers).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/likes", h.ShowLikes).Methods("GET")

	// Message routes
	router.HandleFunc("/messages/new", h.AddMessage).Methods("GET", "POST")
	router.HandleFunc("/messages/{id:[0-9]+}", h.ShowMessage).Methods("GET")
	router.HandleFunc("/messages/{id:[0-9]+}/delete", h.DeleteMessage).Methods("POST")
	router.HandleFunc("/messages/{id:[0-9]+}/like", h.ToggleLike).Methods("POST")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(router)
}
