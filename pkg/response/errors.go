package response

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/logger"
)

// HTTPError carries an explicit status and message through a handler's
// error return.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Translator maps a domain error to a status and message. ok=false means
// "not mine".
type Translator func(err error) (status int, message string, ok bool)

var (
	translatorsMu sync.RWMutex
	translators   []Translator
)

// RegisterTranslator adds t to the chain consulted by Err, in order.
func RegisterTranslator(t Translator) {
	translatorsMu.Lock()
	defer translatorsMu.Unlock()
	translators = append(translators, t)
}

const internalMessage = "The server encountered an internal error and was unable to complete your request."

// Resolve picks the status and message for err. Unknown errors are 500 with
// a generic message.
func Resolve(err error) (int, string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Message
	}

	translatorsMu.RLock()
	defer translatorsMu.RUnlock()
	for _, t := range translators {
		if status, msg, ok := t(err); ok {
			return status, msg
		}
	}
	return http.StatusInternalServerError, internalMessage
}

// Err logs err with the request's logger and writes the matching ErrorBody.
func Err(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := Resolve(err)

	level := slog.LevelError
	if status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
		level = slog.LevelWarn
	}
	logger.WithCtx(r.Context()).Log(r.Context(), level, http.StatusText(status),
		"status", status,
		"message", msg,
		"error", err,
	)

	Error(w, status, msg)
}
