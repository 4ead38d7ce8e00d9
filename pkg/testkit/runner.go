package testkit

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// HandlerFactory builds a fresh handler, and whatever state sits behind it,
// for one flow.
type HandlerFactory func(t *testing.T) http.Handler

// Run executes every step of the flow at path against handler, in order.
func Run(t *testing.T, handler http.Handler, path string) {
	t.Helper()

	f, err := LoadFlow(path)
	if err != nil {
		t.Fatalf("%v", err)
	}

	t.Run(f.Name, func(t *testing.T) {
		runFlow(t, handler, f)
	})
}

// RunDir runs each *.json flow in dir as a subtest with its own handler.
// Files ending in _req.json or _res.json are bodies, not flows.
func RunDir(t *testing.T, dir string, newHandler HandlerFactory) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		if isBodyFile(path) {
			continue
		}
		f, err := LoadFlow(path)
		if err != nil {
			t.Errorf("%v", err)
			continue
		}

		t.Run(f.Name, func(t *testing.T) {
			runFlow(t, newHandler(t), f)
		})
	}
}

func isBodyFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, "_req.json") || strings.HasSuffix(base, "_res.json")
}

func runFlow(t *testing.T, handler http.Handler, f *Flow) {
	t.Helper()

	for i, s := range f.Steps {
		ok := t.Run(fmt.Sprintf("%02d %s", i+1, s.Name), func(t *testing.T) {
			RunScenario(t, handler, s)
		})
		if !ok {
			// later steps depend on this one's side effects
			t.FailNow()
		}
	}
}

// RunScenario fires one request and asserts status, headers and body.
func RunScenario(t *testing.T, handler http.Handler, s *Scenario) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := s.RequestPayload()
	if err != nil {
		t.Fatalf("[%s] read request body: %v", s.Name, err)
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	method := strings.ToUpper(s.RequestMethod)
	if method == "" {
		method = http.MethodGet
	}

	req := httptest.NewRequest(method, s.RequestURL, body)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	AssertStatusCode(t, s, rec.Code)
	AssertHeaders(t, s, rec.Header())

	expected, err := s.ExpectedPayload()
	if err != nil {
		t.Errorf("[%s] read expected response: %v", s.Name, err)
	} else if expected != nil {
		AssertJSONBody(t, s, expected, rec.Body.Bytes())
	}

	return rec
}

// DumpScenario prints a one-screen summary of s.
func DumpScenario(s *Scenario) {
	fmt.Printf("Scenario: %s\n", s.Name)
	fmt.Printf("  %s %s -> %d\n", s.RequestMethod, s.RequestURL, s.ExpectedCode)
	fmt.Printf("  requestFile:  %s\n", s.RequestFileName)
	fmt.Printf("  responseFile: %s\n", s.ResponseFileName)
	for k, v := range s.ExpectedHeaders {
		fmt.Printf("  header %s: %q\n", k, v)
	}
}
