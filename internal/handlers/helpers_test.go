package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medconnect/medconnect-api/internal/config"
	"github.com/medconnect/medconnect-api/internal/handlers"
	"github.com/medconnect/medconnect-api/internal/models"
	"github.com/medconnect/medconnect-api/internal/payment"
	"github.com/medconnect/medconnect-api/internal/repo"
)

const testSecret = "test-secret"

// --- in-memory fakes for the repository interfaces ---

type fakeUsers struct {
	mu    sync.Mutex
	users []models.User
}

func (f *fakeUsers) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repo.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return user.ID, nil
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.User(nil), f.users...), nil
}

type fakeDoctors struct {
	mu      sync.Mutex
	doctors []models.Doctor
}

func (f *fakeDoctors) Insert(_ context.Context, doc *models.Doctor) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc.ID = primitive.NewObjectID()
	f.doctors = append(f.doctors, *doc)
	return doc.ID, nil
}

func (f *fakeDoctors) List(_ context.Context) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Doctor(nil), f.doctors...), nil
}

func (f *fakeDoctors) FindByID(_ context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			doc := f.doctors[i]
			return &doc, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeDoctors) Approve(_ context.Context, id primitive.ObjectID) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			if f.doctors[i].Approval == "true" {
				return 1, 0, nil
			}
			f.doctors[i].Approval = "true"
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

type fakeBlogs struct {
	mu    sync.Mutex
	posts []models.BlogPost
}

func (f *fakeBlogs) Insert(_ context.Context, post *models.BlogPost) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post.ID = primitive.NewObjectID()
	f.posts = append(f.posts, *post)
	return post.ID, nil
}

func (f *fakeBlogs) List(_ context.Context) ([]models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.BlogPost(nil), f.posts...), nil
}

func (f *fakeBlogs) FindByID(_ context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			post := f.posts[i]
			return &post, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeBlogs) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeAppointments struct {
	mu     sync.Mutex
	orders []models.Appointment
}

func (f *fakeAppointments) Insert(_ context.Context, apt *models.Appointment) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apt.ID = primitive.NewObjectID()
	f.orders = append(f.orders, *apt)
	return apt.ID, nil
}

func (f *fakeAppointments) List(_ context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Appointment(nil), f.orders...), nil
}

func (f *fakeAppointments) MarkPaid(_ context.Context, tranID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].TransactionID == tranID && !f.orders[i].PaidStatus {
			f.orders[i].PaidStatus = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeAppointments) DeleteByTransaction(_ context.Context, tranID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].TransactionID == tranID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// fakeGateway records every session and hands back a canned checkout URL.
type fakeGateway struct {
	mu       sync.Mutex
	sessions []payment.Session
	err      error
}

func (f *fakeGateway) CreateSession(_ context.Context, s payment.Session) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.sessions = append(f.sessions, s)
	return "https://sandbox.sslcommerz.com/checkout/" + s.TransactionID, nil
}

// --- test environment ---

type testEnv struct {
	Users        *fakeUsers
	Doctors      *fakeDoctors
	Blogs        *fakeBlogs
	Appointments *fakeAppointments
	Gateway      *fakeGateway
	Router       *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		Users:        &fakeUsers{},
		Doctors:      &fakeDoctors{},
		Blogs:        &fakeBlogs{},
		Appointments: &fakeAppointments{},
		Gateway:      &fakeGateway{},
	}

	h := &handlers.Handler{
		Users:        env.Users,
		Doctors:      env.Doctors,
		Blogs:        env.Blogs,
		Appointments: env.Appointments,
		Gateway:      env.Gateway,
		Cfg: config.Config{
			JWTSecret:   testSecret,
			ServerURL:   "http://localhost:5000",
			ClientURL:   "http://localhost:5173",
			CORSOrigins: []string{"http://localhost:5173"},
		},
	}
	env.Router = handlers.NewRouter(h)
	return env
}

func (e *testEnv) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	e.Router.ServeHTTP(w, req)
	return w
}

// sessionCookie issues a session through POST /jwt and returns the cookie.
func (e *testEnv) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	w := e.do("POST", "/jwt", `{"email":"author@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("jwt issue code=%d body=%s", w.Code, w.Body.String())
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "token" {
			return ck
		}
	}
	t.Fatal("no token cookie in /jwt response")
	return nil
}
