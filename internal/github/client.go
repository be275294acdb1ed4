// Package github reads public GitHub data: the contribution calendar from the
// contributions API and profile/repository data from the REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	apiURL           string
	contributionsURL string
	token            string
	httpClient       *http.Client
}

type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type Contributions struct {
	Total         map[string]int    `json:"total"`
	Contributions []ContributionDay `json:"contributions"`
}

type User struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	HTMLURL     string    `json:"html_url"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

type Repo struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	HTMLURL         string    `json:"html_url"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewClient builds a client. token is optional; without it requests are
// unauthenticated and subject to GitHub's anonymous rate limit.
func NewClient(apiURL, contributionsURL, token string) *Client {
	return &Client{
		apiURL:           strings.TrimSuffix(apiURL, "/"),
		contributionsURL: strings.TrimSuffix(contributionsURL, "/"),
		token:            token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Contributions(ctx context.Context, username string) (*Contributions, error) {
	var result Contributions
	endpoint := fmt.Sprintf("%s/v4/%s", c.contributionsURL, url.PathEscape(username))
	if err := c.getJSON(ctx, endpoint, false, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) User(ctx context.Context, username string) (*User, error) {
	var result User
	endpoint := fmt.Sprintf("%s/users/%s", c.apiURL, url.PathEscape(username))
	if err := c.getJSON(ctx, endpoint, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Repos returns the user's public repositories, most recently updated first.
func (c *Client) Repos(ctx context.Context, username string, limit int) ([]Repo, error) {
	var result []Repo
	endpoint := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", c.apiURL, url.PathEscape(username), limit)
	if err := c.getJSON(ctx, endpoint, true, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, githubAPI bool, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if githubAPI {
		req.Header.Set("Accept", "application/vnd.github+json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error! status: %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
