package handlers

import (
	"context"
	"net/http"

	"taskboard/internal/hub"
	"taskboard/internal/models"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	loginToken  string
	loginErr    error
	parseID     int
	parseErr    error
	user        *models.User
	userErr     error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastLoginPassword    string
	lastParseToken       string
	registerCalls        int
	loginCalls           int
}

func (m *mockAuth) Register(username, password string) (int, error) {
	m.registerCalls++
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(username, password string) (string, error) {
	m.loginCalls++
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) UserByID(id int) (*models.User, error) {
	return m.user, m.userErr
}

type mockTasks struct {
	listResp  []models.Task
	listErr   error
	getResp   *models.Task
	getErr    error
	created   *models.Task
	createErr error
	updated   *models.Task
	updateErr error
	deleteErr error

	createCalls     int
	lastCreateTitle string
	lastCreateDesc  string
	lastUpdateID    int
	lastUpdate      service.UpdateParams
	deleteCalls     int
	lastDeleteID    int
}

func (m *mockTasks) List(ctx context.Context) ([]models.Task, error) {
	return m.listResp, m.listErr
}

func (m *mockTasks) Get(ctx context.Context, id int) (*models.Task, error) {
	return m.getResp, m.getErr
}

func (m *mockTasks) Create(ctx context.Context, title, description string) (*models.Task, error) {
	m.createCalls++
	m.lastCreateTitle = title
	m.lastCreateDesc = description
	return m.created, m.createErr
}

func (m *mockTasks) Update(ctx context.Context, id int, p service.UpdateParams) (*models.Task, error) {
	m.lastUpdateID = id
	m.lastUpdate = p
	return m.updated, m.updateErr
}

func (m *mockTasks) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func testUser() *models.User {
	return &models.User{ID: 1, Username: "u"}
}

func sessionCookieFor(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookie, Value: token}
}

func newTestRouter(s *service.Service, broadcast *hub.Hub) *gin.Engine {
	if broadcast == nil {
		broadcast = hub.New(nil)
	}
	h := NewHandler(s, broadcast, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
