package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Write([]byte("tile"))
		case "/empty.png":
			w.WriteHeader(http.StatusOK)
		case "/slow.png":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte("late"))
		default:
			http.Error(w, "forbidden", http.StatusForbidden)
		}
	}))
	defer server.Close()

	f := NewHTTPFetcher(2, 0)
	ctx := context.Background()

	body, err := f.Fetch(ctx, server.URL+"/ok.png")
	if err != nil || string(body) != "tile" {
		t.Fatalf("ok: %q, %v", body, err)
	}

	_, err = f.Fetch(ctx, server.URL+"/empty.png")
	if !errors.Is(err, ErrEmptyTile) {
		t.Errorf("empty: err = %v", err)
	}

	_, err = f.Fetch(ctx, server.URL+"/denied.png")
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusForbidden {
		t.Errorf("denied: err = %v", err)
	}

	short := NewHTTPFetcher(2, 20*time.Millisecond)
	if _, err := short.Fetch(ctx, server.URL+"/slow.png"); err == nil {
		t.Error("slow: expected timeout")
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := f.Fetch(cctx, server.URL+"/ok.png"); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: err = %v", err)
	}
}

func TestGetTileURL(t *testing.T) {
	tm := testTileMap(10, 10)
	tile := TileAt(56.0, 9.5, 10)
	if got := tm.GetTileURL(Contour, tile); got != testBaseURL+"/t_1200233231.png" {
		t.Errorf("contour url = %s", got)
	}
	tm.URL += "/"
	if got := tm.GetTileURL(Shade, tile); got != testBaseURL+"/b_1200233231.png" {
		t.Errorf("shade url = %s", got)
	}
}
