package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/database"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/handlers"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/models"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/repositories"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/routes"
)

// Use the same secret key as the CookieStore under test so forged session
// cookies decode exactly like the ones the server issues.
var secretKey = []byte("development-key")
var s = securecookie.New(secretKey, nil)

type testApp struct {
	handler  http.Handler
	users    *repositories.UserRepository
	messages *repositories.MessageRepository
	db       *gorm.DB
}

// newTestApp wires the full application (repositories, handlers, router)
// against a fresh in-memory sqlite database.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.New(dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	users := repositories.NewUserRepository(db)
	messages := repositories.NewMessageRepository(db)
	store := sessions.NewCookieStore(secretKey)
	h := handlers.NewHandler(users, messages, store)

	return &testApp{
		handler:  routes.SetupRoutes(h),
		users:    users,
		messages: messages,
		db:       db,
	}
}

// sessionCookie forges a signed session cookie carrying the given user id,
// mimicking what a browser would send after logging in. The id does not have
// to belong to a real user — that is exactly what the invalid-session tests
// need.
func sessionCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()

	values := map[interface{}]interface{}{handlers.CurrUserKey: userID}
	encoded, err := s.Encode(handlers.SessionName, values)
	if err != nil {
		t.Fatalf("failed to encode session cookie: %v", err)
	}
	return &http.Cookie{Name: handlers.SessionName, Value: encoded}
}

func (app *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	app.handler.ServeHTTP(rr, req)
	return rr
}

func (app *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	app.handler.ServeHTTP(rr, req)
	return rr
}

func (app *testApp) signup(t *testing.T, username, email string) *models.User {
	t.Helper()
	user, err := app.users.Signup(username, email, "testpassword", "")
	if err != nil {
		t.Fatalf("failed to sign up %s: %v", username, err)
	}
	return user
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (app *testApp) addMessage(t *testing.T, userID uint, text string) *models.Message {
	t.Helper()
	message := &models.Message{Text: text, UserID: userID}
	if err := app.messages.Create(message); err != nil {
		t.Fatalf("failed to create message: %v", err)
	}
	return message
}
