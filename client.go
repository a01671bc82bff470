package orgimporter

import (
	"net/url"
	"os"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/crossplane/function-sdk-go/errors"
)

// SaaSHost is the host of the shared GitLab SaaS offering. Instances on any
// other host are treated as self-managed.
const SaaSHost = "gitlab.com"

const apiPrefix = "api/v4/"

// Client wraps the GitLab API client together with the instance metadata the
// importer needs to make routing decisions.
type Client struct {
	api      *gitlab.Client
	saasHost string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithSaaSHost overrides the host used to detect self-managed instances.
// Useful for dedicated SaaS mirrors and for tests.
func WithSaaSHost(host string) ClientOption {
	return func(c *Client) {
		c.saasHost = host
	}
}

// NewClient wraps an already configured GitLab API client.
func NewClient(api *gitlab.Client, opts ...ClientOption) *Client {
	c := &Client{
		api:      api,
		saasHost: SaaSHost,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadClient initializes and returns a Client for use by an ingestion pipeline.
// It retrieves the GitLab personal access token from the environment variable
// `GITLAB_API_KEY`. If the token is missing, an error is returned.
//
// The GitLab BaseURL is resolved in the following order:
//  1. From the environment variable `GITLAB_URL`.
//  2. Defaults to `https://gitlab.com/` if not provided.
//
// The function then creates a new GitLab client using the token and the
// resolved BaseURL, appending `/api/v4` to the URL.
//
// Returns:
//   - A configured *Client instance if successful.
//   - An error if the token is missing or the client cannot be created.
func LoadClient(opts ...ClientOption) (*Client, error) {
	// try to get token from environment
	token := os.Getenv("GITLAB_API_KEY")
	if token == "" {
		return nil, errors.New("token could not be retrieved from environment")
	}

	// try to get BaseURL from environment variables
	baseURL := os.Getenv("GITLAB_URL")
	// if BaseURL not set in environment use default BaseURL
	if baseURL == "" {
		baseURL = "https://gitlab.com/"
	}

	api, err := gitlab.NewClient(token, gitlab.WithBaseURL(strings.TrimSuffix(baseURL, "/")+"/api/v4"))
	if err != nil {
		return nil, errors.Errorf("creating new client for gitlab api: %w", err)
	}

	return NewClient(api, opts...), nil
}

// BaseURL returns the root URL of the GitLab instance the client talks to,
// with the API prefix stripped.
func (c *Client) BaseURL() *url.URL {
	u := *c.api.BaseURL()
	u.Path = strings.TrimSuffix(u.Path, apiPrefix)
	return &u
}

// IsSelfManaged reports whether the client talks to a self-managed instance
// rather than the shared SaaS offering. Only self-managed instances expose
// the instance-wide user listing.
func (c *Client) IsSelfManaged() bool {
	return c.BaseURL().Host != c.saasHost
}
