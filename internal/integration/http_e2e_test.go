//go:build integration || !unit

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"trip_planner/internal/adapters/geocode"
	server "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/app"
	"trip_planner/internal/domain"
	mysqlrepo "trip_planner/internal/storage/mysql"
)

// ---------- helpers ----------

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return res
}

// ---------- the test ----------

func TestHTTP_EndToEnd_GenerateSaveFetch(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=trips",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "trips")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Apply your real migrations
	applyMigrations(t, db)

	// Wire the real server. No AI provider and no external enrichers:
	// generation serves fallback content, enrichment attaches coordinates only.
	repo := mysqlrepo.New(db)
	genSvc := app.NewGeneratorService(nil, time.Second)
	enrichSvc := app.NewEnrichmentService(nil, nil, geocode.New(), nil, nil, 0)
	savedSvc := app.NewSavedItineraryService(repo, nil, 0)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{Gen: genSvc, Enrich: enrichSvc, Saved: savedSvc})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// 1) Generate
	res := postJSON(t, ts.URL+"/v1/itineraries", map[string]any{
		"destination": "Mumbai",
		"days":        2,
		"budget":      "mid",
		"interests":   []string{"food"},
	})
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("generate status %d", res.StatusCode)
	}
	var it domain.Itinerary
	if err := json.NewDecoder(res.Body).Decode(&it); err != nil {
		t.Fatalf("decode itinerary: %v", err)
	}
	if it.Destination != "Mumbai" || len(it.Days) != 2 || it.GeneratedBy != domain.SourceFallback {
		t.Fatalf("unexpected itinerary: dest=%s days=%d src=%s", it.Destination, len(it.Days), it.GeneratedBy)
	}
	if it.Coordinates == nil {
		t.Fatalf("expected coordinates enrichment")
	}

	// 2) Save
	res2 := postJSON(t, ts.URL+"/v1/saved-itineraries", map[string]any{
		"owner":     "alex",
		"itinerary": it,
	})
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusCreated {
		t.Fatalf("save status %d", res2.StatusCode)
	}
	var saved struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(res2.Body).Decode(&saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("no id returned")
	}

	// 3) Fetch back, then revalidate with the ETag
	res3, err := http.Get(ts.URL + "/v1/saved-itineraries/" + saved.ID)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res3.Body.Close()
	if res3.StatusCode != http.StatusOK {
		t.Fatalf("fetch status %d", res3.StatusCode)
	}
	etag := res3.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}
	var fetched domain.Itinerary
	if err := json.NewDecoder(res3.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode fetched: %v", err)
	}
	if fetched.Destination != "Mumbai" || fetched.TotalCost != it.TotalCost {
		t.Fatalf("fetched document differs: %+v", fetched)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/saved-itineraries/"+saved.ID, nil)
	req.Header.Set("If-None-Match", etag)
	res4, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("revalidate: %v", err)
	}
	defer res4.Body.Close()
	if res4.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res4.StatusCode)
	}

	// 4) Owner listing
	res5, err := http.Get(ts.URL + "/v1/saved-itineraries?owner=alex")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer res5.Body.Close()
	var listing struct {
		Items []struct {
			ID          string `json:"id"`
			Destination string `json:"destination"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res5.Body).Decode(&listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listing.Items) != 1 || listing.Items[0].ID != saved.ID {
		t.Fatalf("unexpected listing: %+v", listing)
	}
}
