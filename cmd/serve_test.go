package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/service/servicetest"
)

func TestNewHTTPServer_MountsAuthRoutes(t *testing.T) {
	stack := servicetest.New(t)
	e := newHTTPServer(stack.Auth)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRunSweeper_StopsWithContext(t *testing.T) {
	stack := servicetest.New(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		runSweeper(ctx, stack.Auth, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sweeper did not stop after cancel")
	}
}

func TestRunSweeper_DisabledReturnsImmediately(t *testing.T) {
	stack := servicetest.New(t)

	done := make(chan struct{})
	go func() {
		runSweeper(context.Background(), stack.Auth, 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("disabled sweeper should return")
	}
}
