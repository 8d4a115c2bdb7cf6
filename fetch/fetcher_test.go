package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewFetcher(t *testing.T) {
	tests := []struct {
		name     string
		fc       FetcherConfig
		expectOk bool
	}{
		{name: "static", fc: FetcherConfig{Type: STATIC_FETCHER_TYPE}, expectOk: true},
		{name: "default is static", fc: FetcherConfig{}, expectOk: true},
		{name: "dummy", fc: FetcherConfig{Type: DUMMY_FETCHER_TYPE}, expectOk: true},
		{name: "unknown", fc: FetcherConfig{Type: "carrier-pigeon"}, expectOk: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewFetcher(&tc.fc)
			if tc.expectOk {
				if err != nil || f == nil {
					t.Fatalf("unexpected error: %v", err)
				}
				f.Cancel()
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestDummyFetcher(t *testing.T) {
	f := NewDummyFetcher(&FetcherConfig{
		DummyPages: []DummyPage{{Url: "http://localhost/a", Content: "<html></html>"}},
	})
	content, err := f.Fetch(context.Background(), "http://localhost/a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "<html></html>" {
		t.Fatalf("unexpected content: %q", content)
	}
	if _, err := f.Fetch(context.Background(), "http://localhost/b"); err == nil {
		t.Fatal("expected an error for an unknown page")
	}
}

func TestStaticFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "cselect-test" {
			t.Errorf("unexpected user agent: %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte("<html><body></body></html>"))
	}))
	defer srv.Close()

	f := NewStaticFetcher(&FetcherConfig{UserAgent: "cselect-test"})
	content, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "<html><body></body></html>" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestStaticFetcherStatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewStaticFetcher(&FetcherConfig{})
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected a status code error")
	}
}
