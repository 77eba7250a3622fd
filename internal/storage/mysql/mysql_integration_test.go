//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"trip_planner/internal/domain"
	mysqlrepo "trip_planner/internal/storage/mysql"
)

// ---------- small helpers ----------

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

func sampleItinerary(dest string, days int) domain.Itinerary {
	return domain.Itinerary{
		Destination: dest,
		Duration:    days,
		Budget:      domain.TierMid,
		TotalCost:   "₹21,000",
		Overview:    domain.Overview{Summary: fmt.Sprintf("A %d-day trip to %s.", days, dest)},
		Days: []domain.DayPlan{{
			Day:   1,
			Theme: "Heritage & Culture",
			Activities: domain.DaySegments{
				Morning:   []domain.Activity{{Name: "Gateway of India"}},
				Afternoon: []domain.Activity{{Name: "Elephanta Caves"}},
				Evening:   []domain.Activity{{Name: "Marine Drive"}},
			},
		}},
		GeneratedBy: domain.SourceFallback,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// ---------- the test ----------

func TestRepo_MySQL_SaveAndQuery(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
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

	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// Arrange — two itineraries for one owner, one for another
	first := domain.SavedItinerary{
		ID:        uuid.NewString(),
		Owner:     "alex",
		Document:  sampleItinerary("Mumbai", 3),
		CreatedAt: time.Now().UTC().Add(-time.Hour).Truncate(time.Second),
	}
	second := domain.SavedItinerary{
		ID:        uuid.NewString(),
		Owner:     "alex",
		Document:  sampleItinerary("Goa", 2),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	other := domain.SavedItinerary{
		ID:        uuid.NewString(),
		Owner:     "sam",
		Document:  sampleItinerary("Jaipur", 4),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, si := range []domain.SavedItinerary{first, second, other} {
		if err := repo.Save(ctx, si); err != nil {
			t.Fatalf("Save %s: %v", si.Document.Destination, err)
		}
	}

	// Assert — document round-trips through the JSON column
	got, err := repo.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Owner != "alex" || got.Document.Destination != "Mumbai" || got.Document.Duration != 3 {
		t.Fatalf("unexpected saved itinerary: %+v", got)
	}
	if got.Document.Days[0].Activities.Morning[0].Name != "Gateway of India" {
		t.Fatalf("document detail lost: %+v", got.Document.Days[0])
	}

	// Listing is per-owner, newest first
	list, err := repo.ListByOwner(ctx, "alex")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 itineraries for alex, got %d", len(list))
	}
	if list[0].Document.Destination != "Goa" || list[1].Document.Destination != "Mumbai" {
		t.Fatalf("order wrong: %s, %s", list[0].Document.Destination, list[1].Document.Destination)
	}

	// Unknown id maps to the domain sentinel
	if _, err := repo.Get(ctx, uuid.NewString()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
