package testhelpers

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// FakeResponse is a canned upstream answer
type FakeResponse struct {
	Status int
	Body   string
}

// FakeSpoonacular is an httptest stand-in for the recipe API. Responses are
// registered per path; every request is counted.
type FakeSpoonacular struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]FakeResponse
	calls     map[string]int
	queries   map[string][]string
}

// NewFakeSpoonacular starts a fake upstream closed when t ends
func NewFakeSpoonacular(t *testing.T) *FakeSpoonacular {
	t.Helper()
	f := &FakeSpoonacular{
		responses: map[string]FakeResponse{},
		calls:     map[string]int{},
		queries:   map[string][]string{},
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// Handle registers the answer for path, e.g. "/recipes/complexSearch".
func (f *FakeSpoonacular) Handle(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = FakeResponse{Status: status, Body: body}
}

// Calls returns how many requests hit path
func (f *FakeSpoonacular) Calls(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

// TotalCalls returns how many requests were served
func (f *FakeSpoonacular) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// Queries returns the raw query strings sent to path, in order
func (f *FakeSpoonacular) Queries(path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries[path]...)
}

func (f *FakeSpoonacular) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.URL.Path]++
	f.queries[r.URL.Path] = append(f.queries[r.URL.Path], r.URL.RawQuery)
	resp, ok := f.responses[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		resp = FakeResponse{Status: http.StatusNotFound, Body: `{"status":"failure","message":"not found"}`}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = io.Copy(w, strings.NewReader(resp.Body))
}
