// Package keycloak implements the identity provider port against the
// Keycloak REST API.
package keycloak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/fx"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	"crm/internal/errors"
)

const requestTimeout = 10 * time.Second

// Client talks to the Keycloak realm that owns the customer accounts.
type Client struct {
	cfg        *config.KeycloakConfig
	httpClient *http.Client
	logger     *slog.Logger
	adminToken *tokenCache
}

// Params defines the dependencies for the client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New is the constructor for the Keycloak client.
func New(params Params) (service.IdentityProvider, error) {
	if params.Config.Keycloak == nil {
		return nil, errors.New("keycloak configuration is missing")
	}

	return &Client{
		cfg:        params.Config.Keycloak,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     params.Logger,
		adminToken: newTokenCache(params.Config.Keycloak.TokenTTLMargin),
	}, nil
}

// tokenResponse mirrors the OpenID Connect token endpoint payload.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int    `json:"expires_in"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
	TokenType        string `json:"token_type"`
}

// userRepresentation mirrors the Keycloak admin user payload.
type userRepresentation struct {
	ID          string       `json:"id,omitempty"`
	Username    string       `json:"username"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email"`
	Enabled     bool         `json:"enabled"`
	Credentials []credential `json:"credentials,omitempty"`
}

type credential struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Temporary bool   `json:"temporary"`
}

// roleRepresentation mirrors the Keycloak realm role payload.
type roleRepresentation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Login exchanges the customer's credentials for a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*service.TokenPair, error) {
	tokens, err := c.requestToken(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:      tokens.AccessToken,
		ExpiresIn:        tokens.ExpiresIn,
		RefreshToken:     tokens.RefreshToken,
		RefreshExpiresIn: tokens.RefreshExpiresIn,
		TokenType:        tokens.TokenType,
	}, nil
}

// CreateAccount registers the account and returns the provider's user ID
// taken from the Location header.
func (c *Client) CreateAccount(ctx context.Context, profile service.AccountProfile, password string) (string, error) {
	payload := userRepresentation{
		Username:  profile.Username,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Enabled:   true,
		Credentials: []credential{{
			Type:      "password",
			Value:     password,
			Temporary: false,
		}},
	}

	resp, err := c.adminRequest(ctx, http.MethodPost, c.adminURL("users"), payload)
	if err != nil {
		return "", err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusCreated {
		return "", c.unexpectedStatus("create account", resp)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", errors.New("keycloak returned no account location")
	}

	return path.Base(location), nil
}

// AssignRole grants the realm role to the account.
func (c *Client) AssignRole(ctx context.Context, accountID string, role entity.Role) error {
	roleRep, err := c.lookupRole(ctx, role.ProviderName())
	if err != nil {
		return err
	}

	endpoint := c.adminURL("users", accountID, "role-mappings", "realm")
	resp, err := c.adminRequest(ctx, http.MethodPost, endpoint, []roleRepresentation{*roleRep})
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusNoContent {
		return c.unexpectedStatus("assign role", resp)
	}

	return nil
}

// UpdateAccount synchronizes the profile of the account behind username.
func (c *Client) UpdateAccount(ctx context.Context, username string, profile service.AccountProfile) error {
	accountID, err := c.findAccountID(ctx, username)
	if err != nil {
		return err
	}

	payload := userRepresentation{
		Username:  profile.Username,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Enabled:   true,
	}

	resp, err := c.adminRequest(ctx, http.MethodPut, c.adminURL("users", accountID), payload)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusNoContent {
		return c.unexpectedStatus("update account", resp)
	}

	return nil
}

// ResetPassword sets a permanent new password for username.
func (c *Client) ResetPassword(ctx context.Context, username, newPassword string) error {
	accountID, err := c.findAccountID(ctx, username)
	if err != nil {
		return err
	}

	payload := credential{
		Type:      "password",
		Value:     newPassword,
		Temporary: false,
	}

	endpoint := c.adminURL("users", accountID, "reset-password")
	resp, err := c.adminRequest(ctx, http.MethodPut, endpoint, payload)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusNoContent {
		return c.unexpectedStatus("reset password", resp)
	}

	return nil
}

// DeleteAccount removes the account for username. A missing account counts
// as already deleted.
func (c *Client) DeleteAccount(ctx context.Context, username string) error {
	accountID, err := c.findAccountID(ctx, username)
	if err != nil {
		if errors.Is(err, errAccountNotFound) {
			return nil
		}

		return err
	}

	resp, err := c.adminRequest(ctx, http.MethodDelete, c.adminURL("users", accountID), nil)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return c.unexpectedStatus("delete account", resp)
	}

	return nil
}

var errAccountNotFound = errors.New("keycloak account not found")

// findAccountID resolves a username to the provider's user ID.
func (c *Client) findAccountID(ctx context.Context, username string) (string, error) {
	endpoint := c.adminURL("users") + "?" + url.Values{
		"username": {username},
		"exact":    {"true"},
	}.Encode()

	resp, err := c.adminRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return "", c.unexpectedStatus("find account", resp)
	}

	var users []userRepresentation
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return "", errors.Wrap(err, "failed to decode keycloak user list")
	}
	if len(users) == 0 {
		return "", errAccountNotFound
	}

	return users[0].ID, nil
}

// lookupRole fetches the realm role representation by name.
func (c *Client) lookupRole(ctx context.Context, name string) (*roleRepresentation, error) {
	resp, err := c.adminRequest(ctx, http.MethodGet, c.adminURL("roles", name), nil)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus("lookup role", resp)
	}

	var role roleRepresentation
	if err := json.NewDecoder(resp.Body).Decode(&role); err != nil {
		return nil, errors.Wrap(err, "failed to decode keycloak role")
	}

	return &role, nil
}

// adminRequest sends an authenticated admin API call, retrying once with a
// fresh token when the cached one was rejected.
func (c *Client) adminRequest(ctx context.Context, method, endpoint string, payload any) (*http.Response, error) {
	resp, err := c.doAdminRequest(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		closeBody(resp)
		c.adminToken.invalidate()

		return c.doAdminRequest(ctx, method, endpoint, payload)
	}

	return resp, nil
}

func (c *Client) doAdminRequest(ctx context.Context, method, endpoint string, payload any) (*http.Response, error) {
	token, err := c.adminToken.get(func() (string, time.Duration, error) {
		tokens, err := c.requestToken(ctx, c.cfg.AdminUsername, c.cfg.AdminPassword)
		if err != nil {
			return "", 0, err
		}

		return tokens.AccessToken, time.Duration(tokens.ExpiresIn) * time.Second, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to obtain admin token")
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode keycloak payload")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build keycloak request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "keycloak request failed")
	}

	return resp, nil
}

// requestToken runs the password grant against the realm token endpoint.
func (c *Client) requestToken(ctx context.Context, username, password string) (*tokenResponse, error) {
	form := url.Values{
		"grant_type": {"password"},
		"client_id":  {c.cfg.ClientID},
		"username":   {username},
		"password":   {password},
	}
	if c.cfg.ClientSecret != "" {
		form.Set("client_secret", c.cfg.ClientSecret)
	}

	endpoint := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.Realm)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token request failed")
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus("request token", resp)
	}

	var tokens tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	return &tokens, nil
}

func (c *Client) adminURL(segments ...string) string {
	base := strings.TrimSuffix(c.cfg.BaseURL, "/")
	parts := append([]string{"admin", "realms", c.cfg.Realm}, segments...)

	return base + "/" + strings.Join(parts, "/")
}

// unexpectedStatus drains a bounded slice of the body for diagnostics.
func (c *Client) unexpectedStatus(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	return errors.Errorf("keycloak %s returned %d: %s", operation, resp.StatusCode, string(body))
}

func closeBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}
}
