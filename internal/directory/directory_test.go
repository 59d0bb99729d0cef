package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"mastery-dashboard/internal/config"

	"github.com/rs/zerolog"
)

const championJSON = `{
	"type": "champion",
	"version": "15.24.1",
	"data": {
		"Aatrox": {"key": "266", "id": "Aatrox"},
		"Ahri":   {"key": "103", "id": "Ahri"},
		"KSante": {"key": "897", "id": "KSante"}
	}
}`

func newTestDirectory(t *testing.T, handler http.Handler) (*Directory, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		DDragonBaseURL: ts.URL,
		DDragonVersion: "15.24.1",
	}
	return New(cfg, zerolog.Nop()), ts
}

func TestLoadAndNameOf(t *testing.T) {
	var path string
	dir, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(championJSON))
	}))

	if err := dir.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := "/15.24.1/data/en_US/champion.json"; path != want {
		t.Errorf("fetched %q, want %q", path, want)
	}

	if got := dir.NameOf(266); got != "Aatrox" {
		t.Errorf("NameOf(266) = %q, want Aatrox", got)
	}
	if got := dir.NameOf(999); got != "Champion 999" {
		t.Errorf("NameOf(999) = %q, want placeholder", got)
	}
	if !dir.Known(103) {
		t.Error("Known(103) = false, want true")
	}
	if dir.Known(999) {
		t.Error("Known(999) = true, want false")
	}
}

func TestNameOfBeforeLoad(t *testing.T) {
	dir, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(championJSON))
	}))

	if got := dir.NameOf(266); got != "Champion 266" {
		t.Errorf("NameOf before Load = %q, want placeholder", got)
	}
}

func TestLoadFailureDegradesToPlaceholders(t *testing.T) {
	dir, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := dir.Load(context.Background())
	if err == nil {
		t.Fatal("Load: expected error on upstream 500")
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Load error = %T, want *FetchError", err)
	}

	// The directory is still usable, every id resolves to a placeholder.
	if got := dir.NameOf(266); got != "Champion 266" {
		t.Errorf("NameOf after failed load = %q, want placeholder", got)
	}
}

func TestLoadFailureRetries(t *testing.T) {
	var calls atomic.Int32
	dir, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(championJSON))
	}))

	if err := dir.Load(context.Background()); err == nil {
		t.Fatal("first Load: expected error")
	}
	if err := dir.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if got := dir.NameOf(266); got != "Aatrox" {
		t.Errorf("NameOf after retry = %q, want Aatrox", got)
	}
}

func TestConcurrentLoadSharesOneFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	dir, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.Write([]byte(championJSON))
	}))

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = dir.Load(context.Background())
		}(i)
	}

	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Load %d: %v", i, err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("champion table fetched %d times, want 1", got)
	}

	// Loading again after success must not refetch.
	if err := dir.Load(context.Background()); err != nil {
		t.Fatalf("Load after success: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("loaded directory refetched, %d calls", got)
	}
}

func TestImageURLs(t *testing.T) {
	dir, ts := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(championJSON))
	}))
	if err := dir.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, want := dir.ImageURL(266), ts.URL+"/15.24.1/img/champion/Aatrox.png"; got != want {
		t.Errorf("ImageURL(266) = %q, want %q", got, want)
	}
	// Unresolved ids compose a placeholder URL; callers pair it with
	// FallbackImageURL because it will 404.
	if got, want := dir.ImageURL(999), ts.URL+"/15.24.1/img/champion/Champion 999.png"; got != want {
		t.Errorf("ImageURL(999) = %q, want %q", got, want)
	}
	if got, want := dir.ProfileIconURL(4568), ts.URL+"/15.24.1/img/profileicon/4568.png"; got != want {
		t.Errorf("ProfileIconURL = %q, want %q", got, want)
	}
	if dir.FallbackImageURL() == "" {
		t.Error("FallbackImageURL is empty")
	}
}
