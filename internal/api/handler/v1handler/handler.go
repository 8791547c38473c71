// Package v1handler implements the version 1 HTTP endpoints of the
// passphrase API.
package v1handler

import (
	"context"
	"correcthorse/internal/composer"
	"correcthorse/internal/config"
	"correcthorse/pkg/logger"
	"correcthorse/pkg/serrors"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the collaborators of Handler.
type Deps struct {
	Composer composer.Composer
}

// Options tune request parsing.
type Options struct {
	// MaxCount caps the count query parameter.
	MaxCount int
	// MaxWords caps the words query parameter.
	MaxWords int
	// MaxChars caps the chars query parameter.
	MaxChars int
	// CharsMin, WordsMin, Sep and CamelCase are used when the matching query
	// parameter is absent.
	CharsMin  int
	WordsMin  int
	Sep       string
	CamelCase bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxCount:  cfg.HTTP.MaxCount,
		MaxWords:  cfg.HTTP.MaxWords,
		MaxChars:  cfg.HTTP.MaxChars,
		CharsMin:  cfg.Defaults.Chars,
		WordsMin:  cfg.Defaults.Words,
		Sep:       cfg.Defaults.Sep,
		CamelCase: cfg.Defaults.CamelCase,
	}
}

// Handler serves the v1 API.
type Handler struct {
	deps    Deps
	options Options
}

// New creates a Handler.
func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options}
}

// ErrorResponse maps err to an HTTP status, a machine-readable code and a
// message safe to show to clients.
func ErrorResponse(err error) (int, string, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable, "TIMEOUT", "request timed out"
	}

	var status int
	kind := serrors.KindOf(err)
	switch kind {
	case serrors.ErrBadRequest:
		status = http.StatusBadRequest
	case serrors.ErrNotFound:
		status = http.StatusNotFound
	case serrors.ErrEmptyPool:
		status = http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError, serrors.ErrInternal.Error(), "internal error"
	}

	return status, kind.Error(), err.Error()
}

// writeError logs err and writes it as a JSON error document.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code, msg := ErrorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(code)
	e.FieldStart("message")
	e.Str(msg)
	e.ObjEnd()

	writeJSON(w, status, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
