// Package lineprofile fetches the LINE display name of the person opening
// the booking widget, so their appointments carry a recognizable name.
package lineprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the LINE profile endpoint.
type Client struct {
	profileURL string
	httpClient *http.Client
	log        Logger
}

// NewClient creates the LINE profile client.
func NewClient(profileURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		profileURL: profileURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfile fetches the profile behind the given access token.
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetProfileWithGracefulDegradation fetches the profile but converts
// transport failures and rejected tokens into ErrServiceDegraded, so the
// booking flow can continue under the default display name.
func (c *Client) GetProfileWithGracefulDegradation(ctx context.Context, accessToken string) (*Profile, error) {
	profile, err := c.GetProfile(ctx, accessToken)
	if err != nil {
		c.log.Warn("LINE profile unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Fetched LINE profile for user %s", profile.UserID)
	return profile, nil
}
