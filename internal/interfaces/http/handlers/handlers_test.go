package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationdto "github.com/Harekrushna7138/ticket-service-backend/internal/application/notification/dto"
	userdto "github.com/Harekrushna7138/ticket-service-backend/internal/application/user/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/application/user/usecases"
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/handlers/testutil"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
)

type mockRegisterUC struct {
	got    usecases.RegisterCommand
	called bool
	result *userdto.UserDTO
	err    error
}

func (m *mockRegisterUC) Execute(_ context.Context, cmd usecases.RegisterCommand) (*userdto.UserDTO, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *userdto.LoginResponse
	err    error
}

func (m *mockLoginUC) Execute(context.Context, usecases.LoginCommand) (*userdto.LoginResponse, error) {
	return m.result, m.err
}

type mockListUsersUC struct {
	result []*userdto.UserDTO
	err    error
}

func (m *mockListUsersUC) Execute(context.Context) ([]*userdto.UserDTO, error) {
	return m.result, m.err
}

type mockListNotificationsUC struct {
	got    notificationdto.ListNotificationsRequest
	result []*notificationdto.NotificationDTO
	err    error
}

func (m *mockListNotificationsUC) Execute(_ context.Context, req notificationdto.ListNotificationsRequest) ([]*notificationdto.NotificationDTO, error) {
	m.got = req
	return m.result, m.err
}

type mockMarkAsReadUC struct {
	result *notificationdto.NotificationDTO
	err    error
}

func (m *mockMarkAsReadUC) Execute(context.Context, uint) (*notificationdto.NotificationDTO, error) {
	return m.result, m.err
}

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(context.Context) error {
	return m.err
}

func registerBody() map[string]any {
	return map[string]any{
		"email":      "alice@x.com",
		"password":   "pw123",
		"first_name": "Alice",
		"last_name":  "Smith",
		"role":       "customer",
	}
}

func TestUserHandler_Register(t *testing.T) {
	reg := &mockRegisterUC{result: &userdto.UserDTO{ID: 1, Email: "alice@x.com", Role: "customer", CreatedAt: time.Now()}}
	h := NewUserHandler(reg, &mockLoginUC{}, &mockListUsersUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/register", registerBody())
	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "customer", reg.got.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUserHandler_Register_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"unknown role", func(b map[string]any) { b["role"] = "superuser" }},
		{"bad email", func(b map[string]any) { b["email"] = "nope" }},
		{"missing password", func(b map[string]any) { delete(b, "password") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &mockRegisterUC{}
			h := NewUserHandler(reg, &mockLoginUC{}, &mockListUsersUC{}, testutil.NewMockLogger())
			body := registerBody()
			tt.mutate(body)

			c, w := testutil.NewTestContext(http.MethodPost, "/register", body)
			h.Register(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, reg.called)
		})
	}
}

func TestUserHandler_Register_Conflict(t *testing.T) {
	reg := &mockRegisterUC{err: errors.NewConflictError("Email already registered")}
	h := NewUserHandler(reg, &mockLoginUC{}, &mockListUsersUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/register", registerBody())
	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_Login(t *testing.T) {
	login := &mockLoginUC{result: &userdto.LoginResponse{Token: "signed", User: &userdto.UserDTO{ID: 1}}}
	h := NewUserHandler(&mockRegisterUC{}, login, &mockListUsersUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/login", map[string]any{"email": "alice@x.com", "password": "pw123"})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"signed"`)
}

func TestUserHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{"bad credentials", errors.NewInvalidCredentialsError(), http.StatusUnauthorized, "invalid_credentials"},
		{"corrupt hash", errors.NewCredentialFormatError("bad salt"), http.StatusInternalServerError, "credential_format_error"},
		{"store down", errors.NewPersistenceError("select", "user", stderrors.New("down")), http.StatusInternalServerError, "persistence_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(&mockRegisterUC{}, &mockLoginUC{err: tt.err}, &mockListUsersUC{}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/login", map[string]any{"email": "alice@x.com", "password": "pw"})
			h.Login(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.NotContains(t, w.Body.String(), "down")
			assert.NotContains(t, w.Body.String(), "bad salt")
		})
	}
}

func TestUserHandler_ListUsers(t *testing.T) {
	list := &mockListUsersUC{result: []*userdto.UserDTO{{ID: 1, Email: "alice@x.com"}}}
	h := NewUserHandler(&mockRegisterUC{}, &mockLoginUC{}, list, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/users", nil)
	h.ListUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@x.com")
}

func TestNotificationHandler_List(t *testing.T) {
	list := &mockListNotificationsUC{result: []*notificationdto.NotificationDTO{}}
	h := NewNotificationHandler(list, &mockMarkAsReadUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
	testutil.SetQueryParams(c, map[string]string{"user_id": "4"})
	h.ListNotifications(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, list.got.UserID)
	assert.Equal(t, uint(4), *list.got.UserID)

	c, w = testutil.NewTestContext(http.MethodGet, "/notifications", nil)
	testutil.SetQueryParams(c, map[string]string{"user_id": "x"})
	h.ListNotifications(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandler_MarkAsRead(t *testing.T) {
	h := NewNotificationHandler(&mockListNotificationsUC{}, &mockMarkAsReadUC{result: &notificationdto.NotificationDTO{ID: 2, Read: true}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/notifications/2/read", nil)
	testutil.SetURLParam(c, "id", "2")
	h.MarkAsRead(c)
	assert.Equal(t, http.StatusOK, w.Code)

	h = NewNotificationHandler(&mockListNotificationsUC{}, &mockMarkAsReadUC{err: errors.NewNotFoundError("notification not found")}, testutil.NewMockLogger())
	c, w = testutil.NewTestContext(http.MethodPut, "/notifications/3/read", nil)
	testutil.SetURLParam(c, "id", "3")
	h.MarkAsRead(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSystemHandler(t *testing.T) {
	h := NewSystemHandler(&mockPinger{}, "sqlite", testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/", nil)
	h.Root(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Support Ticketing System")

	c, w = testutil.NewTestContext(http.MethodGet, "/health", nil)
	h.Health(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var healthy testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &healthy))
	assert.True(t, healthy.Success)
	assert.Nil(t, healthy.Error)
	assert.Contains(t, string(healthy.Data), `"status":"ok"`)
	assert.Contains(t, string(healthy.Data), `"database":"up"`)

	h = NewSystemHandler(&mockPinger{err: stderrors.New("refused")}, "postgres", testutil.NewMockLogger())
	c, w = testutil.NewTestContext(http.MethodGet, "/health", nil)
	h.Health(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var degraded testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &degraded))
	assert.False(t, degraded.Success)
	require.NotNil(t, degraded.Error)
	assert.Equal(t, "service_unavailable", degraded.Error.Type)
	assert.Contains(t, string(degraded.Data), `"database":"down"`)
	assert.Contains(t, string(degraded.Data), `"status":"degraded"`)
}
