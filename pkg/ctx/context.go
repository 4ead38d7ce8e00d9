// Package ctx provides the request context handed to controller actions.
//
// Actions receive a single *Context and return an error; Wrap turns any
// returned error into the JSON error body via response.Err:
//
//	func (ic *InventoryController) Show(c *ctx.Context) error {
//	    id, err := c.ParamInt("inventory_id")
//	    ...
//	    c.JSON(http.StatusOK, inv)
//	    return nil
//	}
//
//	router.Get("/inventories/{inventory_id}", "inventories.show", ctx.Wrap(ic.Show))
package ctx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/bind"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/logger"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/response"
)

// HandlerFunc is the context-aware action signature.
type HandlerFunc func(c *Context) error

// Wrap adapts h to http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		if err := h(c); err != nil {
			response.Err(w, r, err)
		}
	}
}

type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int // 0 until something is written
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamInt parses a path parameter as an int.
func (c *Context) ParamInt(key string) (int, error) {
	raw := c.Param(key)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("path parameter %s=%q is not an integer", key, raw)
	}
	return n, nil
}

func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

func (c *Context) QueryValues() url.Values {
	return c.R.URL.Query()
}

func (c *Context) Header(key string) string {
	return c.R.Header.Get(key)
}

func (c *Context) Context() context.Context { return c.R.Context() }

// Logger returns the request-scoped logger.
func (c *Context) Logger() *slog.Logger { return logger.WithCtx(c.R.Context()) }

// BaseURL is scheme://host of the incoming request, honouring
// X-Forwarded-Proto from a terminating proxy.
func (c *Context) BaseURL() string {
	scheme := "http"
	if c.R.TLS != nil {
		scheme = "https"
	}
	if p := c.R.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + c.R.Host
}

// RequireJSON fails with 415 unless Content-Type is application/json
// (parameters such as charset are allowed).
func (c *Context) RequireJSON() error {
	ct := c.R.Header.Get("Content-Type")
	if ct == "" {
		return response.NewHTTPError(http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}
	media, _, err := mime.ParseMediaType(ct)
	if err != nil || media != "application/json" {
		return response.NewHTTPError(http.StatusUnsupportedMediaType,
			fmt.Sprintf("Content-Type must be application/json, got %q", ct))
	}
	return nil
}

// BindJSON decodes and validates the request body into dest.
// The caller decides how to report the returned error.
func (c *Context) BindJSON(dest any) error {
	return bind.JSON(c.R, dest)
}

func (c *Context) SetHeader(key, value string) {
	c.W.Header().Set(key, value)
}

// Status writes just the HTTP status code with an empty body.
func (c *Context) Status(code int) {
	c.status = code
	c.W.WriteHeader(code)
}

// NoContent writes a 204.
func (c *Context) NoContent() {
	c.Status(http.StatusNoContent)
}

// JSON writes v with the given status code.
func (c *Context) JSON(code int, v any) {
	c.W.Header().Set("Content-Type", "application/json")
	c.W.WriteHeader(code)
	c.status = code
	json.NewEncoder(c.W).Encode(v) //nolint:errcheck
}

// Message writes {"status": code, "message": msg}.
func (c *Context) Message(code int, msg string) {
	c.status = code
	response.Message(c.W, code, msg)
}

// HTML writes a pre-rendered page.
func (c *Context) HTML(code int, page []byte) {
	c.W.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.W.WriteHeader(code)
	c.status = code
	c.W.Write(page) //nolint:errcheck
}

// WrittenStatus returns the status written so far, or 0.
func (c *Context) WrittenStatus() int { return c.status }
