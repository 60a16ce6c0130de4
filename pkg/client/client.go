// Package client is a self-contained Go consumer of the campus-eats API.
// It keeps one durable token per role in a local file, attaches the right
// bearer credential by route, and holds at most one active role at a time.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// APIError is a {success:false, message} response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type saveMenuRequest struct {
	Items []MenuItem `json:"items"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenStore

	mu      sync.Mutex
	session Session
}

func New(baseURL string, tokenFile string) (*Client, error) {
	tokens, err := NewTokenStore(tokenFile)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		session: Anonymous(),
	}, nil
}

func (c *Client) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session
}

func (c *Client) RegisterStudent(ctx context.Context, req RegisterRequest) (Profile, error) {
	return c.authenticate(ctx, RoleStudent, "/api/Student/register", req)
}

func (c *Client) LoginStudent(ctx context.Context, email string, password string) (Profile, error) {
	return c.authenticate(ctx, RoleStudent, "/api/Student/login", loginRequest{Email: email, Password: password})
}

func (c *Client) RegisterVendor(ctx context.Context, req RegisterRequest) (Profile, error) {
	return c.authenticate(ctx, RoleVendor, "/api/Vendor/register", req)
}

func (c *Client) LoginVendor(ctx context.Context, email string, password string) (Profile, error) {
	return c.authenticate(ctx, RoleVendor, "/api/Vendor/login", loginRequest{Email: email, Password: password})
}

// Logout ends the active role's session. The stored token is cleared even
// when the server call fails; the raw token itself stays valid server-side
// until it expires.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	role, active := c.session.Role()
	c.mu.Unlock()
	if !active {
		return nil
	}

	_, callErr := c.do(ctx, http.MethodGet, role.routePrefix()+"/logout", nil)

	c.mu.Lock()
	c.session = Anonymous()
	c.mu.Unlock()
	if err := c.tokens.Clear(role); err != nil {
		return err
	}

	return callErr
}

// Rehydrate probes both roles' is-auth endpoints with any stored tokens and
// restores the surviving session. A failed probe clears that role's token.
// When both tokens are still valid the vendor session wins and the student
// side is logged out, keeping the mutual-exclusion invariant.
func (c *Client) Rehydrate(ctx context.Context) error {
	// Snapshot first: activating one role clears the other's stored token,
	// which must not hide a token that was present when the probe started.
	stored := map[Role]string{
		RoleStudent: c.tokens.Get(RoleStudent),
		RoleVendor:  c.tokens.Get(RoleVendor),
	}

	for _, role := range []Role{RoleStudent, RoleVendor} {
		token := stored[role]
		if token == "" {
			continue
		}

		profile, err := c.isAuth(ctx, role, token)
		if err != nil {
			if clearErr := c.tokens.Clear(role); clearErr != nil {
				return clearErr
			}
			continue
		}

		if err := c.activate(ctx, role, profile, token); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) VendorsWithMenus(ctx context.Context) ([]VendorRef, error) {
	result, err := c.do(ctx, http.MethodGet, "/api/Student/vendors-with-menus", nil)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Success bool        `json:"success"`
		Vendors []VendorRef `json:"vendors"`
	}
	if err := json.Unmarshal(result.body, &parsed); err != nil {
		return nil, fmt.Errorf("decode vendors response: %w", err)
	}
	return parsed.Vendors, nil
}

func (c *Client) MenuOf(ctx context.Context, vendorEmail string) (Menu, error) {
	return c.menuRequest(ctx, http.MethodGet, "/api/Vendor/menu/"+vendorEmail, nil)
}

// SaveMenu publishes the logged-in vendor's menu.
func (c *Client) SaveMenu(ctx context.Context, items []MenuItem) (Menu, error) {
	return c.menuRequest(ctx, http.MethodPost, "/api/Vendor/menu", saveMenuRequest{Items: items})
}

func (c *Client) Menu(ctx context.Context) (Menu, error) {
	return c.menuRequest(ctx, http.MethodGet, "/api/Vendor/menu", nil)
}

func (c *Client) DeleteMenu(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/Vendor/menu", nil)
	return err
}

// authenticate runs register/login, captures the session token from the
// Set-Cookie header, and activates the role's session.
func (c *Client) authenticate(ctx context.Context, role Role, path string, payload any) (Profile, error) {
	result, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return Profile{}, err
	}

	profile, err := parseProfile(result.body, role)
	if err != nil {
		return Profile{}, err
	}

	token := ""
	for _, cookie := range result.cookies {
		if cookie.Name == role.cookieName() {
			token = cookie.Value
			break
		}
	}
	if token == "" {
		return Profile{}, fmt.Errorf("auth response missing %s cookie", role.cookieName())
	}

	if err := c.activate(ctx, role, profile, token); err != nil {
		return Profile{}, err
	}

	return profile, nil
}

// activate makes role the single active session. If the other role was
// active it is logged out first, server-side best effort and locally always.
func (c *Client) activate(ctx context.Context, role Role, profile Profile, token string) error {
	other := RoleVendor
	if role == RoleVendor {
		other = RoleStudent
	}

	c.mu.Lock()
	currentRole, active := c.session.Role()
	c.mu.Unlock()

	if active && currentRole == other {
		_, _ = c.do(ctx, http.MethodGet, other.routePrefix()+"/logout", nil)
	}
	if err := c.tokens.Clear(other); err != nil {
		return err
	}

	if err := c.tokens.Set(role, token); err != nil {
		return err
	}

	c.mu.Lock()
	if role == RoleVendor {
		c.session = VendorSession(profile)
	} else {
		c.session = StudentSession(profile)
	}
	c.mu.Unlock()

	return nil
}

func (c *Client) isAuth(ctx context.Context, role Role, token string) (Profile, error) {
	result, err := c.doWithToken(ctx, http.MethodGet, role.routePrefix()+"/is-auth", nil, token)
	if err != nil {
		return Profile{}, err
	}

	return parseProfile(result.body, role)
}

func (c *Client) menuRequest(ctx context.Context, method string, path string, payload any) (Menu, error) {
	result, err := c.do(ctx, method, path, payload)
	if err != nil {
		return Menu{}, err
	}

	var parsed struct {
		Success bool  `json:"success"`
		Menu    *Menu `json:"menu"`
	}
	if err := json.Unmarshal(result.body, &parsed); err != nil {
		return Menu{}, fmt.Errorf("decode menu response: %w", err)
	}
	if parsed.Menu == nil {
		return Menu{}, fmt.Errorf("menu response missing menu")
	}
	return *parsed.Menu, nil
}

type doResult struct {
	body    []byte
	cookies []*http.Cookie
}

// do sends one request, attaching the bearer token selected by the route
// prefix, and returns body and cookies for 2xx responses.
func (c *Client) do(ctx context.Context, method string, path string, payload any) (doResult, error) {
	return c.doWithToken(ctx, method, path, payload, c.tokenForPath(path))
}

func (c *Client) doWithToken(ctx context.Context, method string, path string, payload any, token string) (doResult, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return doResult{}, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return doResult{}, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return doResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return doResult{}, err
	}

	if resp.StatusCode >= 400 {
		var failure statusResponse
		message := http.StatusText(resp.StatusCode)
		if err := json.Unmarshal(body, &failure); err == nil && failure.Message != "" {
			message = failure.Message
		}
		return doResult{}, &APIError{Status: resp.StatusCode, Message: message}
	}

	return doResult{body: body, cookies: resp.Cookies()}, nil
}

func (c *Client) tokenForPath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/Student"):
		return c.tokens.Get(RoleStudent)
	case strings.HasPrefix(path, "/api/Vendor"):
		return c.tokens.Get(RoleVendor)
	default:
		return ""
	}
}

func parseProfile(body []byte, role Role) (Profile, error) {
	var parsed struct {
		Success bool     `json:"success"`
		Student *Profile `json:"student"`
		Vendor  *Profile `json:"vendor"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Profile{}, fmt.Errorf("decode auth response: %w", err)
	}

	profile := parsed.Student
	if role == RoleVendor {
		profile = parsed.Vendor
	}
	if !parsed.Success || profile == nil {
		return Profile{}, fmt.Errorf("auth response missing %s profile", role)
	}

	return *profile, nil
}
