// Package testkit drives REST API tests from JSON scenario files.
//
// A scenario file holds one flow: an ordered list of steps fired against
// the same handler, so later steps see the state earlier ones created.
//
//	testdata/
//	  create_inventory.json          flow
//	  create_inventory_req.json      request body for a step
//	  create_inventory_res.json      expected response body for a step
//
// Example _test.go:
//
//	func TestAPI(t *testing.T) {
//	    testkit.RunDir(t, "testdata", func(t *testing.T) http.Handler {
//	        return kernel.NewHTTPKernel(testdb.New(t)).Handler()
//	    })
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Flow is the contents of one scenario file.
type Flow struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Steps       []*Scenario `json:"steps"`

	dir string
}

// Scenario describes a single request and what it must produce.
type Scenario struct {
	Name string `json:"name"`

	RequestMethod   string            `json:"requestMethod"`
	RequestURL      string            `json:"requestUrl"`
	RequestFileName string            `json:"requestFileName"` // relative to the flow file
	RequestBody     json.RawMessage   `json:"requestBody"`     // inline alternative to requestFileName
	Headers         map[string]string `json:"headers"`

	ExpectedCode     int               `json:"expectedCode"`
	ResponseFileName string            `json:"responseFileName"`
	ResponseBody     json.RawMessage   `json:"responseBody"`
	// ExpectedHeaders are compared exactly; "*" only requires presence and
	// "" requires absence.
	ExpectedHeaders map[string]string `json:"expectedHeaders"`

	dir string
}

// LoadFlow reads and validates a flow file.
func LoadFlow(path string) (*Flow, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var f Flow
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	f.dir = filepath.Dir(abs)
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("testkit: invalid flow %q: no steps", abs)
	}
	for i, s := range f.Steps {
		s.dir = f.dir
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("testkit: invalid flow %q step %d: %w", abs, i, err)
		}
	}
	return &f, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	if s.RequestFileName != "" && len(s.RequestBody) > 0 {
		return fmt.Errorf("requestFileName and requestBody are mutually exclusive")
	}
	if s.ResponseFileName != "" && len(s.ResponseBody) > 0 {
		return fmt.Errorf("responseFileName and responseBody are mutually exclusive")
	}
	return nil
}

// RequestPayload returns the request body bytes, or nil for no body.
func (s *Scenario) RequestPayload() ([]byte, error) {
	if len(s.RequestBody) > 0 {
		return s.RequestBody, nil
	}
	if s.RequestFileName == "" {
		return nil, nil
	}
	return os.ReadFile(s.resolve(s.RequestFileName))
}

// ExpectedPayload returns the expected response body, or nil when the body
// is not checked.
func (s *Scenario) ExpectedPayload() ([]byte, error) {
	if len(s.ResponseBody) > 0 {
		return s.ResponseBody, nil
	}
	if s.ResponseFileName == "" {
		return nil, nil
	}
	return os.ReadFile(s.resolve(s.ResponseFileName))
}

func (s *Scenario) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}
