// Package dto holds the view models handed to the HTML templates.
package dto

import "github.com/dwoodsteinhoff/warbler-Twitter-clone/models"

// Stats are the four counters shown on a profile page.
type Stats struct {
	Messages  int64
	Following int64
	Followers int64
	Likes     int64
}

// ProfileView renders /users/{id} and its following/followers/likes pages.
type ProfileView struct {
	User     *models.User
	Stats    Stats
	Messages []models.Message
	Users    []models.User
	Viewer   *models.User
	Title    string
}

// UserListView renders /users.
type UserListView struct {
	Users []models.User
	Query string
}

// MessageView renders a single message page.
type MessageView struct {
	Message *models.Message
	Likes   int64
}

// TimelineView renders the home page for a logged-in user.
type TimelineView struct {
	Viewer   *models.User
	Messages []models.Message
}

// FormView renders the signup and login forms, with an optional error line.
type FormView struct {
	Error string
}
