// Package wiki fetches best-effort page summaries and search results from a
// Wikipedia-compatible API. The summary path never fails: when both the REST
// summary endpoint and the action-API fallback are unusable it degrades to a
// result carrying only the requested title.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultBaseURL = "https://sr.wikipedia.org"

	requestTimeout  = 6 * time.Second
	summaryCacheTTL = 24 * time.Hour
	thumbnailSize   = 600
)

// Summary is the normalized shape extracted from either endpoint. The three
// optional fields are nil on a degraded result.
type Summary struct {
	Title       string  `json:"title"`
	Extract     *string `json:"extract"`
	Thumbnail   *string `json:"thumbnail"`
	ContentURLs *string `json:"content_urls"`
}

type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SummaryCache is the slice of redis commands the summary path uses.
// *redis.Client satisfies it.
type SummaryCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type Client struct {
	baseURL string
	http    *http.Client
	cache   SummaryCache // nil disables caching
	logger  *slog.Logger
}

func NewClient(baseURL string, cache SummaryCache, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		cache:   cache,
		logger:  logger,
	}
}

// Summary looks up title and always returns a usable result. Transport
// errors, timeouts, non-success statuses from both strategies and malformed
// bodies all degrade to {title, nil, nil, nil}.
func (c *Client) Summary(ctx context.Context, title string) Summary {
	if s, ok := c.cachedSummary(ctx, title); ok {
		return s
	}

	s, err := c.restSummary(ctx, title)
	if err != nil {
		c.logger.Debug("summary endpoint failed, trying query fallback", "title", title, "error", err)
		s, err = c.querySummary(ctx, title)
	}
	if err != nil {
		c.logger.Info("wiki summary degraded", "title", title, "error", err)
		return Summary{Title: title}
	}

	c.storeSummary(ctx, title, s)
	return s
}

// Search runs a full-text search and returns up to limit {title, snippet}
// pairs. Unlike Summary, failures are reported to the caller.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "snippet")

	var body struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/w/api.php?"+params.Encode(), &body); err != nil {
		return nil, fmt.Errorf("wiki search %q: %w", query, err)
	}

	results := make([]SearchResult, 0, len(body.Query.Search))
	for _, hit := range body.Query.Search {
		results = append(results, SearchResult{Title: hit.Title, Snippet: hit.Snippet})
	}
	return results, nil
}

// restSummary queries the page summary endpoint by exact title.
func (c *Client) restSummary(ctx context.Context, title string) (Summary, error) {
	var body struct {
		Title     string `json:"title"`
		Extract   string `json:"extract"`
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
		ContentURLs struct {
			Desktop struct {
				Page string `json:"page"`
			} `json:"desktop"`
		} `json:"content_urls"`
	}
	endpoint := c.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(title)
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return Summary{}, err
	}

	s := Summary{Title: title}
	if body.Title != "" {
		s.Title = body.Title
	}
	s.Extract = optional(body.Extract)
	s.Thumbnail = optional(body.Thumbnail.Source)
	s.ContentURLs = optional(body.ContentURLs.Desktop.Page)
	return s, nil
}

// querySummary is the fallback: a general-purpose action-API query asking for
// the page image and intro extract. The canonical URL is rebuilt from the
// title since this endpoint does not return one.
func (c *Client) querySummary(ctx context.Context, title string) (Summary, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "pageimages|extracts")
	params.Set("exintro", "")
	params.Set("explaintext", "")
	params.Set("piprop", "thumbnail")
	params.Set("pithumbsize", strconv.Itoa(thumbnailSize))
	params.Set("titles", title)

	var body struct {
		Query struct {
			Pages map[string]struct {
				Title     string `json:"title"`
				Extract   string `json:"extract"`
				Thumbnail struct {
					Source string `json:"source"`
				} `json:"thumbnail"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/w/api.php?"+params.Encode(), &body); err != nil {
		return Summary{}, err
	}
	if len(body.Query.Pages) == 0 {
		return Summary{}, fmt.Errorf("no pages returned for %q", title)
	}

	s := Summary{Title: title}
	// The pages object is keyed by page id; the key itself carries no data.
	for _, page := range body.Query.Pages {
		if page.Title != "" {
			s.Title = page.Title
		}
		s.Extract = optional(page.Extract)
		s.Thumbnail = optional(page.Thumbnail.Source)
		break
	}
	s.ContentURLs = optional(c.baseURL + "/wiki/" + strings.ReplaceAll(s.Title, " ", "_"))
	return s, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) cachedSummary(ctx context.Context, title string) (Summary, bool) {
	if c.cache == nil {
		return Summary{}, false
	}
	raw, err := c.cache.Get(ctx, summaryKey(title)).Result()
	if err != nil {
		return Summary{}, false
	}
	var s Summary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Summary{}, false
	}
	return s, true
}

// storeSummary is best effort: a dead cache must never affect the lookup.
func (c *Client) storeSummary(ctx context.Context, title string, s Summary) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, summaryKey(title), data, summaryCacheTTL).Err(); err != nil {
		c.logger.Debug("failed to cache wiki summary", "title", title, "error", err)
	}
}

func summaryKey(title string) string {
	return "wiki:summary:" + title
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
