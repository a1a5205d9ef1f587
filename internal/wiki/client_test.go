package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func TestSummaryPrimaryEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/rest_v1/page/summary/") {
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"title": "Novi Pazar",
			"extract": "Novi Pazar je grad u Srbiji.",
			"thumbnail": {"source": "https://upload.example/np.jpg"},
			"content_urls": {"desktop": {"page": "https://sr.wikipedia.org/wiki/Novi_Pazar"}}
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	s := client.Summary(context.Background(), "Novi Pazar")

	if s.Title != "Novi Pazar" {
		t.Errorf("title = %q", s.Title)
	}
	if s.Extract == nil || *s.Extract != "Novi Pazar je grad u Srbiji." {
		t.Errorf("extract = %v", s.Extract)
	}
	if s.Thumbnail == nil || *s.Thumbnail != "https://upload.example/np.jpg" {
		t.Errorf("thumbnail = %v", s.Thumbnail)
	}
	if s.ContentURLs == nil || *s.ContentURLs != "https://sr.wikipedia.org/wiki/Novi_Pazar" {
		t.Errorf("content_urls = %v", s.ContentURLs)
	}
}

func TestSummaryFallsBackToQueryAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/rest_v1/"):
			http.NotFound(w, r)
		case r.URL.Path == "/w/api.php":
			q := r.URL.Query()
			if q.Get("action") != "query" || q.Get("titles") != "Stari Ras" {
				t.Errorf("unexpected query %v", q)
			}
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{
				"query": {"pages": {"12345": {
					"title": "Stari Ras",
					"extract": "Stari Ras je srednjovekovni grad.",
					"thumbnail": {"source": "https://upload.example/ras.jpg"}
				}}}
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	s := client.Summary(context.Background(), "Stari Ras")

	if s.Extract == nil || *s.Extract != "Stari Ras je srednjovekovni grad." {
		t.Errorf("extract = %v", s.Extract)
	}
	if s.Thumbnail == nil || *s.Thumbnail != "https://upload.example/ras.jpg" {
		t.Errorf("thumbnail = %v", s.Thumbnail)
	}
	// Canonical URL is rebuilt from the title, spaces become underscores.
	want := server.URL + "/wiki/Stari_Ras"
	if s.ContentURLs == nil || *s.ContentURLs != want {
		t.Errorf("content_urls = %v, want %q", s.ContentURLs, want)
	}
}

func TestSummaryDegradesWhenBothStrategiesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	s := client.Summary(context.Background(), "Nepostojeći naslov")

	if s.Title != "Nepostojeći naslov" {
		t.Errorf("degraded result must keep the title, got %q", s.Title)
	}
	if s.Extract != nil || s.Thumbnail != nil || s.ContentURLs != nil {
		t.Errorf("degraded result must be all-nil, got %+v", s)
	}
}

func TestSummaryDegradesWhenServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately: every request fails at transport level

	client := NewClient(server.URL, nil, testLogger())
	s := client.Summary(context.Background(), "Bedem")

	if s.Title != "Bedem" || s.Extract != nil || s.Thumbnail != nil || s.ContentURLs != nil {
		t.Errorf("transport failure must degrade, got %+v", s)
	}
}

type fakeCache struct {
	data    map[string]string
	getErr  error
	setErr  error
	lastTTL time.Duration
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.sets++
	f.lastTTL = expiration
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestSummaryCacheHitSkipsNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.NotFound(w, r)
	}))
	defer server.Close()

	cache := newFakeCache()
	cached, _ := json.Marshal(Summary{
		Title:     "Novi Pazar",
		Extract:   strPtr("Novi Pazar je grad u Srbiji."),
		Thumbnail: strPtr("https://upload.example/np.jpg"),
	})
	cache.data["wiki:summary:Novi Pazar"] = string(cached)

	client := NewClient(server.URL, cache, testLogger())
	s := client.Summary(context.Background(), "Novi Pazar")

	if requests != 0 {
		t.Errorf("cache hit must not reach the network, got %d requests", requests)
	}
	if s.Extract == nil || *s.Extract != "Novi Pazar je grad u Srbiji." {
		t.Errorf("extract = %v", s.Extract)
	}
	if s.Thumbnail == nil || *s.Thumbnail != "https://upload.example/np.jpg" {
		t.Errorf("thumbnail = %v", s.Thumbnail)
	}
}

func TestSummaryCacheMissStoresResult(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"title": "Sopoćani", "extract": "Manastir iz 13. veka."}`)
	}))
	defer server.Close()

	cache := newFakeCache()
	client := NewClient(server.URL, cache, testLogger())

	first := client.Summary(context.Background(), "Sopoćani")
	if first.Extract == nil || *first.Extract != "Manastir iz 13. veka." {
		t.Fatalf("extract = %v", first.Extract)
	}
	if cache.sets != 1 {
		t.Errorf("successful lookup should be cached once, got %d sets", cache.sets)
	}
	if cache.lastTTL != 24*time.Hour {
		t.Errorf("cache TTL = %v, want 24h", cache.lastTTL)
	}
	if _, ok := cache.data["wiki:summary:Sopoćani"]; !ok {
		t.Errorf("missing cache entry, keys: %v", cache.data)
	}

	second := client.Summary(context.Background(), "Sopoćani")
	if requests != 1 {
		t.Errorf("second lookup should be served from cache, got %d requests", requests)
	}
	if second.Extract == nil || *second.Extract != *first.Extract {
		t.Errorf("cached result differs: %v", second.Extract)
	}
}

func TestSummaryFallsThroughWhenCacheDead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"title": "Bedem", "extract": "Gradska tvrđava."}`)
	}))
	defer server.Close()

	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")

	client := NewClient(server.URL, cache, testLogger())
	s := client.Summary(context.Background(), "Bedem")

	if s.Extract == nil || *s.Extract != "Gradska tvrđava." {
		t.Errorf("dead cache must not affect the lookup, got %v", s.Extract)
	}
}

func TestSummaryDoesNotCacheDegradedResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	cache := newFakeCache()
	client := NewClient(server.URL, cache, testLogger())

	client.Summary(context.Background(), "Nepoznato")
	if cache.sets != 0 {
		t.Errorf("degraded results must not be cached, got %d sets", cache.sets)
	}
}

func TestSearchReturnsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("list") != "search" || q.Get("srsearch") != "pazar" {
			t.Errorf("unexpected query %v", q)
		}
		if q.Get("srlimit") != "3" {
			t.Errorf("srlimit = %q", q.Get("srlimit"))
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"query": {"search": [
				{"title": "Novi Pazar", "snippet": "grad u Srbiji"},
				{"title": "Pazarište", "snippet": "naselje"}
			]}
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	results, err := client.Search(context.Background(), "pazar", 3)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Title != "Novi Pazar" || results[0].Snippet != "grad u Srbiji" {
		t.Errorf("unexpected first result %+v", results[0])
	}
}

func TestSearchPropagatesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, testLogger())
	if _, err := client.Search(context.Background(), "pazar", 5); err == nil {
		t.Fatal("search must surface upstream failures")
	}
}
