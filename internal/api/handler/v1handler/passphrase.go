package v1handler

import (
	"correcthorse/pkg/domain"
	"correcthorse/pkg/serrors"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-faster/jx"
)

// ParseParams builds composition parameters from a query string, falling back
// to the handler's defaults for absent fields.
func (h *Handler) ParseParams(q url.Values) (domain.Params, error) {
	params := domain.Params{
		Count:     1,
		CharsMin:  h.options.CharsMin,
		WordsMin:  h.options.WordsMin,
		Sep:       h.options.Sep,
		CamelCase: h.options.CamelCase,
		UserWords: domain.Words(q["include"]...),
		Lists:     q["list"],
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"count", &params.Count},
		{"chars", &params.CharsMin},
		{"words", &params.WordsMin},
	}
	for _, f := range ints {
		if !q.Has(f.name) {
			continue
		}
		n, err := strconv.Atoi(q.Get(f.name))
		if err != nil {
			return domain.Params{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", f.name)
		}
		*f.dst = n
	}

	if q.Has("camelcase") {
		b, err := strconv.ParseBool(q.Get("camelcase"))
		if err != nil {
			return domain.Params{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid camelcase")
		}
		params.CamelCase = b
	}
	if q.Has("sep") {
		params.Sep = q.Get("sep")
	}

	limits := []struct {
		name  string
		value int
		max   int
	}{
		{"count", params.Count, h.options.MaxCount},
		{"words", params.WordsMin, h.options.MaxWords},
		{"chars", params.CharsMin, h.options.MaxChars},
	}
	for _, l := range limits {
		if l.max > 0 && l.value > l.max {
			return domain.Params{}, serrors.With(serrors.ErrBadRequest,
				"%s must not exceed %d, got %d", l.name, l.max, l.value)
		}
	}

	// only names inside the word list directory may be served
	for _, name := range params.Lists {
		if !isBareName(name) {
			return domain.Params{}, serrors.With(serrors.ErrBadRequest, "invalid list name %q", name)
		}
	}
	if err := params.Validate(); err != nil {
		return domain.Params{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid parameters")
	}

	return params, nil
}

// isBareName reports whether name is a plain file name without any path
// component.
func isBareName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}

	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// Passphrases handles GET /v1/passphrases.
func (h *Handler) Passphrases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := h.ParseParams(r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	phrases, err := h.deps.Composer.Batch(ctx, params)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("passphrases")
	e.ArrStart()
	for _, p := range phrases {
		e.Str(string(p))
	}
	e.ArrEnd()
	e.ObjEnd()

	writeJSON(w, http.StatusOK, e.Bytes())
}
