package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"moviehub/internal/data/repository"
	"moviehub/pkg/remote"
	"moviehub/pkg/utils"

	"go.uber.org/zap/zaptest"
)

const testSecret = "wire-test-secret"

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  map[string]any  `json:"errors"`
}

type page struct {
	Page       string         `json:"page"`
	State      string         `json:"state"`
	Title      string         `json:"title"`
	Notice     string         `json:"notice"`
	Navigation map[string]any `json:"navigation"`
	Content    map[string]any `json:"content"`
	Actions    []struct {
		Label string `json:"label"`
		Href  string `json:"href"`
	} `json:"actions"`
}

func listBody(n int) string {
	results := make([]string, n)
	for i := range results {
		results[i] = `{"id":` + strconv.Itoa(i+1) + `,"title":"Movie ` + strconv.Itoa(i+1) + `","poster_path":"/p.jpg","release_date":"2010-07-15","vote_average":7.25}`
	}
	return `{"page":1,"results":[` + strings.Join(results, ",") + `],"total_pages":1,"total_results":` + strconv.Itoa(n) + `}`
}

func newUpstream(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("api_key") != testSecret {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`))
			return
		}

		switch r.URL.Path {
		case "/movie/popular":
			w.Write([]byte(listBody(25)))
		case "/movie/top_rated", "/movie/upcoming":
			w.Write([]byte(listBody(3)))
		case "/search/movie":
			if r.URL.Query().Get("query") == "batman" {
				w.Write([]byte(listBody(2)))
				return
			}
			w.Write([]byte(`{"page":1,"results":[],"total_pages":0,"total_results":0}`))
		case "/movie/27205":
			w.Write([]byte(`{"id":27205,"title":"Inception","runtime":148,"budget":160000000,"revenue":0,"status":"Released","original_language":"en","genres":[{"id":28,"name":"Action"}],"production_companies":[]}`))
		case "/movie/27205/release_dates":
			w.Write([]byte(`{"id":27205,"results":[{"iso_3166_1":"US","release_dates":[{"type":3,"certification":"PG-13","release_date":"2010-07-16T00:00:00.000Z","iso_639_1":"","note":""}]},{"iso_3166_1":"ZZ","release_dates":[]}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newApp(t *testing.T, secret string) (*App, *atomic.Int32) {
	t.Helper()

	hits := &atomic.Int32{}
	upstream := newUpstream(t, hits)
	log := zaptest.NewLogger(t)

	client, err := remote.InitClient(utils.TMDBConfig{APIKey: secret, BaseURL: upstream.URL}, log)
	if err != nil {
		t.Fatalf("InitClient: %v", err)
	}

	config := &utils.Config{
		Image:   utils.ImageConfig{BaseURL: "https://image.tmdb.org/t/p"},
		Limiter: utils.LimiterConfig{Enabled: false},
	}
	return Wiring(repository.NewRepository(client, log), config, log), hits
}

func serve(t *testing.T, app *App, req *http.Request) (*httptest.ResponseRecorder, envelope, page) {
	t.Helper()

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, rec.Body.String())
	}
	var p page
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &p); err != nil {
			t.Fatalf("decode page: %v", err)
		}
	}
	return rec, env, p
}

func get(t *testing.T, app *App, target string) (*httptest.ResponseRecorder, envelope, page) {
	return serve(t, app, httptest.NewRequest(http.MethodGet, target, nil))
}

func movieCount(p page) int {
	movies, _ := p.Content["movies"].([]any)
	return len(movies)
}

func TestHome(t *testing.T) {
	app, _ := newApp(t, testSecret)

	rec, env, p := get(t, app, "/")
	if rec.Code != http.StatusOK || !env.Status {
		t.Fatalf("code = %d, env = %+v", rec.Code, env)
	}
	if p.Page != "home" || p.State != "success" {
		t.Fatalf("page = %+v", p)
	}
	if movieCount(p) != 20 {
		t.Fatalf("expected 20 movies, got %d", movieCount(p))
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
}

func TestExplore(t *testing.T) {
	app, _ := newApp(t, testSecret)

	_, _, p := get(t, app, "/explore")
	if movieCount(p) != 25 || p.Content["heading"] != "Popular Movies" {
		t.Fatalf("default explore: %d movies, heading %v", movieCount(p), p.Content["heading"])
	}

	_, _, p = get(t, app, "/explore?filter=top_rated")
	if movieCount(p) != 3 || p.Content["heading"] != "Top Rated Movies" {
		t.Fatalf("top rated: %d movies, heading %v", movieCount(p), p.Content["heading"])
	}
}

func TestExplore_InvalidFilter(t *testing.T) {
	app, hits := newApp(t, testSecret)

	rec, env, _ := get(t, app, "/explore?filter=trending")
	if rec.Code != http.StatusBadRequest || env.Status {
		t.Fatalf("code = %d, env = %+v", rec.Code, env)
	}
	if hits.Load() != 0 {
		t.Fatalf("invalid filter reached the catalog %d times", hits.Load())
	}
}

func TestSearch_SubmitAndRestore(t *testing.T) {
	app, _ := newApp(t, testSecret)

	form := url.Values{"query": {"  batman  "}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, _, p := serve(t, app, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	share := rec.Header().Get("Content-Location")
	if share != "/search?q=batman" || p.Content["share_url"] != share {
		t.Fatalf("share url = %q, content = %v", share, p.Content["share_url"])
	}
	if movieCount(p) != 2 {
		t.Fatalf("movies = %d", movieCount(p))
	}

	_, _, restored := get(t, app, share)
	if restored.State != "success" || restored.Content["query"] != "batman" || movieCount(restored) != 2 {
		t.Fatalf("restored = %+v", restored)
	}
	if len(restored.Actions) != 1 || restored.Actions[0].Label != "Clear Search" {
		t.Fatalf("actions = %+v", restored.Actions)
	}
}

func TestSearch_BlankSubmitRejected(t *testing.T) {
	app, hits := newApp(t, testSecret)

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader("query=+++"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, env, _ := serve(t, app, req)
	if rec.Code != http.StatusBadRequest || env.Status {
		t.Fatalf("code = %d", rec.Code)
	}
	if hits.Load() != 0 {
		t.Fatalf("blank search reached the catalog")
	}
}

func TestSearch_IdleAndEmpty(t *testing.T) {
	app, hits := newApp(t, testSecret)

	_, _, idle := get(t, app, "/search")
	if idle.State != "idle" || idle.Notice != "Enter a movie title above to discover amazing films" {
		t.Fatalf("idle = %+v", idle)
	}
	if hits.Load() != 0 {
		t.Fatal("idle search page should not reach the catalog")
	}

	_, _, empty := get(t, app, "/search?q=zzzz")
	if empty.State != "success" || empty.Notice != `We couldn't find any movies matching "zzzz"` {
		t.Fatalf("empty = %+v", empty)
	}
}

func TestDetail(t *testing.T) {
	app, _ := newApp(t, testSecret)

	rec, _, p := get(t, app, "/27205")
	if rec.Code != http.StatusOK || p.Title != "Inception" {
		t.Fatalf("code = %d, page = %+v", rec.Code, p)
	}
	if p.Content["runtime"] != "2h 28m" || p.Content["budget"] != "$160,000,000" || p.Content["revenue"] != "N/A" {
		t.Fatalf("content = %v", p.Content)
	}
}

func TestDetail_FailureStatuses(t *testing.T) {
	app, _ := newApp(t, testSecret)

	tests := []struct {
		target string
		code   int
	}{
		{"/999", http.StatusNotFound},
		{"/not-a-number", http.StatusBadRequest},
	}

	for _, tt := range tests {
		rec, env, p := get(t, app, tt.target)
		if rec.Code != tt.code {
			t.Errorf("%s: code = %d, want %d", tt.target, rec.Code, tt.code)
		}
		if env.Status || p.State != "failure" || p.Notice == "" {
			t.Errorf("%s: env = %+v page = %+v", tt.target, env, p)
		}
	}
}

func TestMissingCredential(t *testing.T) {
	app, hits := newApp(t, "")

	rec, env, p := get(t, app, "/")
	if rec.Code != http.StatusBadGateway || p.State != "failure" {
		t.Fatalf("code = %d, page = %+v", rec.Code, p)
	}
	if strings.Contains(rec.Body.String(), "Invalid API key") {
		t.Fatalf("upstream message leaked into the page: %s", env.Message)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected one upstream request, got %d", hits.Load())
	}
}

func TestCertification(t *testing.T) {
	app, hits := newApp(t, testSecret)

	rec, _, p := get(t, app, "/27205/certification")
	if rec.Code != http.StatusOK || p.State != "success" {
		t.Fatalf("code = %d, page = %+v", rec.Code, p)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected detail and release dates, got %d requests", hits.Load())
	}

	countries, _ := p.Content["countries"].([]any)
	if len(countries) != 2 {
		t.Fatalf("countries = %v", p.Content["countries"])
	}
	us := countries[0].(map[string]any)
	if us["country_name"] != "United States" || us["release_count"] != "1 release" {
		t.Fatalf("us = %v", us)
	}
	if zz := countries[1].(map[string]any); zz["country_name"] != "ZZ" {
		t.Fatalf("zz = %v", zz)
	}
	if len(p.Actions) != 1 || p.Actions[0].Href != "/27205" {
		t.Fatalf("actions = %+v", p.Actions)
	}
}

func TestNavigationMenu(t *testing.T) {
	app, _ := newApp(t, testSecret)

	_, _, closed := get(t, app, "/search")
	if closed.Navigation["menu_open"] != false {
		t.Fatalf("navigation = %v", closed.Navigation)
	}

	_, _, open := get(t, app, "/search?menu=open")
	if open.Navigation["menu_open"] != true {
		t.Fatalf("navigation = %v", open.Navigation)
	}
	links, _ := open.Navigation["links"].([]any)
	if len(links) != 3 {
		t.Fatalf("links = %v", links)
	}
	if active := links[1].(map[string]any); active["href"] != "/search" || active["active"] != true {
		t.Fatalf("search link = %v", active)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	app, _ := newApp(t, testSecret)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("health = %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics = %d", rec.Code)
	}
}

func TestCredentialNeverRendered(t *testing.T) {
	app, _ := newApp(t, testSecret)

	for _, target := range []string{"/", "/explore", "/search?q=batman", "/27205", "/999", "/27205/certification"} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if strings.Contains(rec.Body.String(), testSecret) {
			t.Fatalf("%s: credential rendered in page", target)
		}
	}
}

func TestSearch_LongQueryRoundTrip(t *testing.T) {
	app, hits := newApp(t, testSecret)
	long := strings.Repeat("x", 201)

	form := url.Values{"query": {long}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, _, p := serve(t, app, req)
	if rec.Code != http.StatusOK || p.State != "success" {
		t.Fatalf("POST code = %d, state = %s", rec.Code, p.State)
	}

	_, _, restored := get(t, app, rec.Header().Get("Content-Location"))
	if restored.State != "success" || restored.Content["query"] != long {
		t.Fatalf("restored state = %s", restored.State)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected two upstream searches, got %d", hits.Load())
	}
}
