package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-eats/internal/config"
	"campus-eats/internal/handler"
	"campus-eats/internal/middleware"
	"campus-eats/internal/model"
	"campus-eats/internal/repository"
	"campus-eats/internal/router"
	"campus-eats/internal/service"
	"campus-eats/internal/token"
)

func newTestServer(t *testing.T) (*httptest.Server, *token.Issuer) {
	t.Helper()

	cfg := &config.Config{
		Env:            "development",
		RequestTimeout: 30 * time.Second,
		CORSOrigins:    []string{"http://localhost:5173"},
	}

	issuer := token.NewIssuer("test-secret", 7*24*time.Hour)
	cookies := handler.CookieOptions{TTL: 7 * 24 * time.Hour, Secure: false}

	studentService := service.NewAccountService(model.RoleStudent, repository.NewMemoryAccountStore(), issuer)
	vendorStore := repository.NewMemoryAccountStore()
	vendorService := service.NewAccountService(model.RoleVendor, vendorStore, issuer)
	menuService := service.NewMenuService(repository.NewMemoryMenuStore(), vendorStore)

	appRouter := router.New(cfg, middleware.NewAuthMiddleware(issuer), router.Handlers{
		Student: handler.NewAccountHandler(studentService, cookies),
		Vendor:  handler.NewAccountHandler(vendorService, cookies),
		Menu:    handler.NewMenuHandler(menuService),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)

	return server, issuer
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func doRequest(t *testing.T, method string, url string, payload any, modify func(*http.Request)) *http.Response {
	t.Helper()

	var reqBody *bytes.Reader
	if payload == nil {
		reqBody = bytes.NewReader(nil)
	} else {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if modify != nil {
		modify(req)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func withCookie(name string, value string) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func authCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set on response", name)
	return nil
}

func registerStudent(t *testing.T, serverURL string) (*http.Response, *http.Cookie) {
	t.Helper()

	resp := postJSON(t, serverURL+"/api/Student/register", model.RegisterRequest{
		Name:          "Asha",
		Email:         "a@x.com",
		Password:      "pw123456",
		ContactNumber: "9999999999",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return resp, authCookie(t, resp, model.RoleStudent.CookieName())
}

func registerVendor(t *testing.T, serverURL string) (*http.Response, *http.Cookie) {
	t.Helper()

	resp := postJSON(t, serverURL+"/api/Vendor/register", model.RegisterRequest{
		Name:     "Canteen One",
		Email:    "v@x.com",
		Password: "pw123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return resp, authCookie(t, resp, model.RoleVendor.CookieName())
}
