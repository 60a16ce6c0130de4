package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-eats/internal/model"
	"campus-eats/internal/repository"
	"campus-eats/internal/token"
	"campus-eats/pkg/apierror"
)

func newStudentService(t *testing.T) (*AccountService, *token.Issuer) {
	t.Helper()

	issuer := token.NewIssuer("test-secret", 7*24*time.Hour)
	return NewAccountService(model.RoleStudent, repository.NewMemoryAccountStore(), issuer), issuer
}

func registerReq() model.RegisterRequest {
	return model.RegisterRequest{
		Name:          "Asha",
		Email:         "a@x.com",
		Password:      "pw123456",
		ContactNumber: "9999999999",
	}
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.HTTPStatus)
	require.Equal(t, message, apiErr.Message)
}

func TestRegisterSucceedsOncePerEmail(t *testing.T) {
	t.Parallel()

	svc, issuer := newStudentService(t)

	result, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	require.Equal(t, "a@x.com", result.Profile.Email)
	require.Equal(t, "Asha", result.Profile.Name)
	require.Equal(t, "9999999999", result.Profile.ContactNumber)

	claims, err := issuer.Parse(result.Token)
	require.NoError(t, err)
	require.Equal(t, model.RoleStudent, claims.Role)

	_, err = svc.Register(context.Background(), registerReq())
	requireAPIError(t, err, http.StatusConflict, "User already exists")
}

func TestRegisterRequiresAllFields(t *testing.T) {
	t.Parallel()

	svc, _ := newStudentService(t)

	for _, req := range []model.RegisterRequest{
		{Email: "a@x.com", Password: "pw123456", ContactNumber: "9999999999"},
		{Name: "Asha", Password: "pw123456", ContactNumber: "9999999999"},
		{Name: "Asha", Email: "a@x.com", ContactNumber: "9999999999"},
		{Name: "Asha", Email: "a@x.com", Password: "pw123456"},
	} {
		_, err := svc.Register(context.Background(), req)
		requireAPIError(t, err, http.StatusBadRequest, "Missing details")
	}
}

func TestVendorRegisterNeedsNoContactNumber(t *testing.T) {
	t.Parallel()

	issuer := token.NewIssuer("test-secret", 7*24*time.Hour)
	svc := NewAccountService(model.RoleVendor, repository.NewMemoryAccountStore(), issuer)

	result, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Canteen One",
		Email:    "v@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)
	require.Empty(t, result.Profile.ContactNumber)

	claims, err := issuer.Parse(result.Token)
	require.NoError(t, err)
	require.Equal(t, model.RoleVendor, claims.Role)
}

func TestLoginDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	t.Parallel()

	svc, _ := newStudentService(t)
	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com", Password: "wrong-pw"})
	requireAPIError(t, err, http.StatusUnauthorized, "Invalid email or password")

	_, err = svc.Login(context.Background(), model.LoginRequest{Email: "nobody@x.com", Password: "pw123456"})
	requireAPIError(t, err, http.StatusUnauthorized, "Invalid email or password")
}

func TestLoginRoundTripsUserID(t *testing.T) {
	t.Parallel()

	svc, issuer := newStudentService(t)
	registered, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	loggedIn, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)
	require.Equal(t, registered.Profile, loggedIn.Profile)

	regClaims, err := issuer.Parse(registered.Token)
	require.NoError(t, err)
	loginClaims, err := issuer.Parse(loggedIn.Token)
	require.NoError(t, err)
	require.Equal(t, regClaims.UserID, loginClaims.UserID)
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newStudentService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com"})
	requireAPIError(t, err, http.StatusBadRequest, "Email and password are required")
}

func TestGetByIDReturnsStoredAccount(t *testing.T) {
	t.Parallel()

	svc, issuer := newStudentService(t)

	result, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	claims, err := issuer.Parse(result.Token)
	require.NoError(t, err)

	account, err := svc.GetByID(context.Background(), claims.UserID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", account.Email)

	_, err = svc.GetByID(context.Background(), "missing-id")
	requireAPIError(t, err, http.StatusNotFound, "Account not found")
}
