//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-eats/internal/model"
)

func TestStudentAccountLifecycle(t *testing.T) {
	server := newServer(t)

	register := model.RegisterRequest{
		Name:          "Asha",
		Email:         "asha@campus.edu",
		Password:      "pw123456",
		ContactNumber: "9999999999",
	}

	resp := postJSON(t, server.URL+"/api/Student/register", register)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := authCookie(t, resp, "student_login_token")

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	student := body["student"].(map[string]any)
	assert.Equal(t, "asha@campus.edu", student["email"])
	assert.Equal(t, "9999999999", student["contactNumber"])

	// Unique index on lower(email) rejects a re-register, including a
	// case-variant of the same address.
	resp = postJSON(t, server.URL+"/api/Student/register", register)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User already exists", decodeBody(t, resp)["message"])

	register.Email = "ASHA@campus.edu"
	resp = postJSON(t, server.URL+"/api/Student/register", register)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// The session cookie authenticates is-auth and logout round trips.
	resp = doRequest(t, http.MethodGet, server.URL+"/api/Student/is-auth", withCookie(cookie))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	student = body["student"].(map[string]any)
	assert.Equal(t, "Asha", student["name"])

	resp = doRequest(t, http.MethodGet, server.URL+"/api/Student/logout", withCookie(cookie))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged Out", decodeBody(t, resp)["message"])

	// Credentials survive the restart of everything but the database row.
	resp = postJSON(t, server.URL+"/api/Student/login", model.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "pw123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	authCookie(t, resp, "student_login_token")
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/Student/login", model.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", decodeBody(t, resp)["message"])
}

func TestStoredPasswordIsHashed(t *testing.T) {
	server := newServer(t)

	resp := postJSON(t, server.URL+"/api/Student/register", model.RegisterRequest{
		Name:          "Ravi",
		Email:         "ravi@campus.edu",
		Password:      "pw123456",
		ContactNumber: "8888888888",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The profile surface never exposes hash material; the only way to
	// verify the credential is a successful login.
	resp = postJSON(t, server.URL+"/api/Student/login", model.LoginRequest{
		Email:    "ravi@campus.edu",
		Password: "pw123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	student := body["student"].(map[string]any)
	_, hasPassword := student["password"]
	assert.False(t, hasPassword)
	_, hasHash := student["passwordHash"]
	assert.False(t, hasHash)
}

func TestStudentAndVendorAccountsAreSeparate(t *testing.T) {
	server := newServer(t)

	// The same email can exist on both sides; they are different tables.
	resp := postJSON(t, server.URL+"/api/Student/register", model.RegisterRequest{
		Name:          "Dual",
		Email:         "dual@campus.edu",
		Password:      "pw123456",
		ContactNumber: "7777777777",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	studentCookie := authCookie(t, resp, "student_login_token")
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/Vendor/register", model.RegisterRequest{
		Name:     "Dual Canteen",
		Email:    "dual@campus.edu",
		Password: "pw123456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// A student token is not accepted by vendor-protected routes.
	resp = doRequest(t, http.MethodGet, server.URL+"/api/Vendor/is-auth", withCookie(&http.Cookie{
		Name:  "vendor_login_token",
		Value: studentCookie.Value,
	}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized", decodeBody(t, resp)["message"])
}
