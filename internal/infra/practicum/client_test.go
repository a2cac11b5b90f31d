package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homework_status_bot/internal/domain/homework"

	logtest "github.com/sirupsen/logrus/hooks/test"
)

func newTestClient(serverURL string, httpClient *http.Client) *Client {
	logger, _ := logtest.NewNullLogger()
	return NewClient(httpClient, serverURL, "secret", logger.WithField("component", "practicum"))
}

func TestFetchStatusesSendsAuthAndCursor(t *testing.T) {
	var gotAuth, gotFrom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1000}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.Client())
	raw, err := c.FetchStatuses(context.Background(), 42)
	if err != nil {
		t.Fatalf("FetchStatuses error: %v", err)
	}
	if gotAuth != "OAuth secret" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotFrom != "42" {
		t.Fatalf("from_date = %q, want 42", gotFrom)
	}

	response, ok := raw.(map[string]any)
	if !ok {
		t.Fatalf("decoded value is %T", raw)
	}
	if response["current_date"] != json.Number("1000") {
		t.Fatalf("current_date = %#v", response["current_date"])
	}
}

func TestFetchStatusesDefaultsCursorToNow(t *testing.T) {
	var gotFrom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("from_date")
		_, _ = w.Write([]byte(`{"homeworks":[],"current_date":1}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.Client())
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	if _, err := c.FetchStatuses(context.Background(), 0); err != nil {
		t.Fatalf("FetchStatuses error: %v", err)
	}
	if gotFrom != "1700000000" {
		t.Fatalf("from_date = %q", gotFrom)
	}
}

func TestFetchStatusesNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":"service_unavailable"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.Client())
	_, err := c.FetchStatuses(context.Background(), 1)

	var statusErr *homework.EndpointStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected EndpointStatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("StatusCode = %d", statusErr.StatusCode)
	}
	if !strings.Contains(statusErr.Body, "service_unavailable") {
		t.Fatalf("Body = %q", statusErr.Body)
	}
	if strings.Contains(err.Error(), "service_unavailable") {
		t.Fatalf("error text should not include the body: %q", err)
	}
}

func TestFetchStatusesBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.Client())
	_, err := c.FetchStatuses(context.Background(), 1)
	if !errors.Is(err, homework.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestFetchStatusesUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	c := newTestClient(serverURL, &http.Client{Timeout: time.Second})
	_, err := c.FetchStatuses(context.Background(), 1)
	if !errors.Is(err, homework.ErrEndpointUnreachable) {
		t.Fatalf("expected ErrEndpointUnreachable, got %v", err)
	}
	if strings.Contains(err.Error(), "from_date") {
		t.Fatalf("error text should not include the query: %q", err)
	}
}
