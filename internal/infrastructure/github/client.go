// Package github implements the GitHub repo-listing proxy used by the
// profile endpoints. It is boundary glue: one GET per lookup, a short-lived
// Redis cache in front, and no retries (failures propagate immediately).
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector-api/pkg/helpers"
)

// ErrNoGithubProfile is returned for any non-success upstream response:
// unknown usernames and upstream faults look the same to callers.
var ErrNoGithubProfile = errors.New("no github profile found")

// Repo is the subset of the GitHub repository object the front end renders.
type Repo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// Client lists public repositories for a username. The API token is
// injected at construction; there is no ambient credential lookup.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	rdb        *redis.Client // optional response cache
	cacheTTL   time.Duration
	logger     *logrus.Logger
}

func NewClient(baseURL, token string, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		rdb:        rdb,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

func cacheKey(username string) string {
	return "github:repos:" + username
}

// ListUserRepos returns up to five repositories sorted by creation date
// ascending, mirroring the query the original API issued.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]Repo, error) {
	if c.rdb != nil {
		var cached []Repo
		if ok, err := helpers.RedisGetJSON(ctx, c.rdb, cacheKey(username), &cached); err == nil && ok {
			return cached, nil
		}
	}

	url := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "devconnector-api")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{
				"username": username,
				"status":   resp.StatusCode,
			}).Debug("github lookup non-success")
		}
		return nil, ErrNoGithubProfile
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, err
	}

	if c.rdb != nil {
		if err := helpers.RedisSetJSON(ctx, c.rdb, cacheKey(username), repos, c.cacheTTL); err != nil && c.logger != nil {
			c.logger.WithError(err).WithField("username", username).Warn("github cache write failed")
		}
	}
	return repos, nil
}
