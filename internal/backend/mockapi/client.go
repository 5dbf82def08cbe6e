// Package mockapi implements the service.Service interface over the MockAPI
// REST collections and the Wikipedia search API.
package mockapi

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"healthyou/internal/articles"
	"healthyou/internal/config"
	"healthyou/internal/records"
	"healthyou/internal/remotelist"
	"healthyou/internal/service"
)

// Client implements service.Service.
type Client struct {
	reminders *remotelist.HTTPEndpoint[records.Reminder]
	profiles  *remotelist.HTTPEndpoint[records.Profile]
	posts     *remotelist.HTTPEndpoint[records.Post]
	accounts  *remotelist.HTTPEndpoint[records.Account]
	articles  *articles.Client
}

var _ service.Service = (*Client)(nil)

// New creates a client for the endpoints in cfg.
func New(cfg *config.Config) (*Client, error) {
	return NewWithHTTPClient(cfg.Endpoints, http.DefaultClient, cfg.Logger)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ep config.Endpoints, httpClient *http.Client, log *zap.Logger) (*Client, error) {
	c := &Client{}
	var err error
	if c.reminders, err = remotelist.NewHTTPEndpoint[records.Reminder](ep.Reminders, httpClient, log); err != nil {
		return nil, fmt.Errorf("reminders: %w", err)
	}
	if c.profiles, err = remotelist.NewHTTPEndpoint[records.Profile](ep.Profiles, httpClient, log); err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	if c.posts, err = remotelist.NewHTTPEndpoint[records.Post](ep.Posts, httpClient, log); err != nil {
		return nil, fmt.Errorf("posts: %w", err)
	}
	if c.accounts, err = remotelist.NewHTTPEndpoint[records.Account](ep.Accounts, httpClient, log); err != nil {
		return nil, fmt.Errorf("accounts: %w", err)
	}
	c.articles = articles.NewClient(ep.Search, httpClient, log)
	return c, nil
}

func (c *Client) Reminders() remotelist.Endpoint[records.Reminder] { return c.reminders }
func (c *Client) Profiles() remotelist.Endpoint[records.Profile]   { return c.profiles }
func (c *Client) Posts() remotelist.Endpoint[records.Post]         { return c.posts }
func (c *Client) Accounts() remotelist.Endpoint[records.Account]   { return c.accounts }
func (c *Client) Articles() articles.Searcher                      { return c.articles }
