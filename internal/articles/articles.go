// Package articles fetches health articles for the dashboard from a
// MediaWiki search endpoint.
package articles

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"healthyou/internal/failure"
	"healthyou/internal/logging"
)

const (
	// DefaultEndpoint is the Indonesian Wikipedia API.
	DefaultEndpoint = "https://id.wikipedia.org/w/api.php"

	// Limit is the number of articles requested per search.
	Limit = 9

	// APITimeout is the timeout for a search call.
	APITimeout = 10 * time.Second

	articleURL = "https://id.wikipedia.org/?curid="
)

// Keywords are the dashboard's default topics; one is picked at random when
// no query is given.
var Keywords = []string{"hidup sehat", "makanan sehat", "olahraga ringan", "air putih", "pola tidur"}

// Article is one search hit. Snippet may contain HTML highlight markup.
type Article struct {
	PageID  int    `json:"pageid"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// URL returns the article's page URL.
func (a Article) URL() string {
	return articleURL + strconv.Itoa(a.PageID)
}

// PlainSnippet returns the snippet with markup removed and whitespace
// collapsed.
func (a Article) PlainSnippet() string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(a.Snippet))
	if err != nil {
		return strings.Join(strings.Fields(a.Snippet), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Searcher finds articles for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Article, error)
}

// Client is a Searcher over the MediaWiki list=search API.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// NewClient creates a search client. A nil httpClient uses
// http.DefaultClient; an empty endpoint uses DefaultEndpoint.
func NewClient(endpoint string, httpClient *http.Client, log *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: httpClient, log: logging.OrNop(log)}
}

type searchResponse struct {
	Query struct {
		Search []Article `json:"search"`
	} `json:"query"`
}

// Search runs one search request and returns at most Limit articles.
func (c *Client) Search(ctx context.Context, query string) ([]Article, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", query)
	q.Set("format", "json")
	q.Set("srlimit", strconv.Itoa(Limit))
	target := c.endpoint + "?" + q.Encode()

	netErr := func(status int, err error) error {
		return &failure.NetworkError{Op: http.MethodGet, URL: c.endpoint, Status: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, netErr(0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, netErr(0, err)
	}
	defer resp.Body.Close()

	c.log.Debug("search", zap.String("query", query), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, netErr(resp.StatusCode, nil)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, netErr(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	hits := sr.Query.Search
	if len(hits) > Limit {
		hits = hits[:Limit]
	}
	return hits, nil
}

// RandomKeyword picks one of Keywords using r, or the global source when r
// is nil.
func RandomKeyword(r *rand.Rand) string {
	if r == nil {
		return Keywords[rand.IntN(len(Keywords))]
	}
	return Keywords[r.IntN(len(Keywords))]
}
