// Package logger provides the service's structured, levelled logger built on
// log/slog.
//
// WithCtx returns the per-request logger installed by the access-log
// middleware, so handler and service logs carry the request_id:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("inventory created", "inventory_id", inv.InventoryID)
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/config"
)

var (
	L *slog.Logger

	mu        sync.Mutex
	mongoSink *MongoHandler
)

func init() {
	L = New(os.Stdout, config.AppEnv(), config.LogLevel())
	slog.SetDefault(L)
}

// New builds a logger writing to w. Production environments get JSON output,
// everything else gets human-readable text. level overrides the env default.
func New(w io.Writer, env, level string) *slog.Logger {
	return slog.New(newHandler(w, env, level))
}

func newHandler(w io.Writer, env, level string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(env, level)}

	switch env {
	case "production", "prod":
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

func parseLevel(env, level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if env == "production" || env == "prod" {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// AttachMongo tees every record into a MongoDB collection in addition to
// stdout. Call Shutdown on exit to flush buffered records.
func AttachMongo(uri, db, collection string) error {
	h, err := NewMongoHandler(uri, db, collection)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	mongoSink = h
	L = slog.New(NewMultiHandler(L.Handler(), h))
	slog.SetDefault(L)
	return nil
}

// Shutdown flushes and disconnects optional sinks.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	if mongoSink != nil {
		mongoSink.Close()
		mongoSink = nil
	}
}

type ctxKey struct{}

// WithCtx returns the logger stored in ctx, or the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
			return log
		}
	}
	return L
}

// InjectLogger stores log in ctx. Called by the access-log middleware.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
