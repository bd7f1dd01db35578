package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	errs "github.com/matzehuels/parallelowow/pkg/errors"
	"github.com/matzehuels/parallelowow/pkg/pattern"
	"github.com/matzehuels/parallelowow/pkg/pipeline"
	"github.com/matzehuels/parallelowow/pkg/preset"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type presetInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Style       map[string]string `json:"style"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	names := preset.Names()
	out := make([]presetInfo, 0, len(names))
	for _, name := range names {
		p, err := preset.Builtin(name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		st, _ := pattern.ParseStyle(p.Source())
		out = append(out, presetInfo{Name: p.Name, Description: p.Description, Style: st.Map()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, r, err)
		return
	}

	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", pipeline.ContentTypes[format])
	h.Set("ETag", strconv.Quote(result.FrameHash[:16]+"-"+format))
	h.Set("X-Tiles-Drawn", strconv.Itoa(result.Stats.Drawn))
	h.Set("X-Tiles-Skipped", strconv.Itoa(result.Stats.Skipped))
	if result.CacheInfo.RenderHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	if s.maxAge > 0 {
		h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.maxAge.Seconds())))
	}
	if match := r.Header.Get("If-None-Match"); match != "" && match == h.Get("ETag") {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// querySource serves style properties from query parameters keyed by short
// property names.
type querySource url.Values

func (q querySource) Lookup(name string) (string, bool) {
	v := url.Values(q)
	return v.Get(name), v.Has(name)
}

// optionsFromQuery builds pipeline options from a query string. Canvas
// parameters must parse; style parameters are handed to the pipeline raw so
// that bad values fall back to their defaults.
func optionsFromQuery(q url.Values) (pipeline.Options, error) {
	var opts pipeline.Options

	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"scale", &opts.Scale},
	} {
		if !q.Has(p.name) {
			continue
		}
		v, err := strconv.ParseFloat(q.Get(p.name), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return opts, errs.New(errs.ErrCodeInvalidInput, "%s must be a number, got %q", p.name, q.Get(p.name))
		}
		*p.dst = v
	}

	if q.Has("seed") {
		seed, err := strconv.ParseUint(q.Get("seed"), 10, 64)
		if err != nil {
			return opts, errs.New(errs.ErrCodeInvalidInput, "seed must be a non-negative integer, got %q", q.Get("seed"))
		}
		opts.Seed = seed
	}

	src := pattern.ShortNames(querySource(q))
	if name := q.Get("preset"); name != "" {
		p, err := preset.Builtin(name)
		if err != nil {
			return opts, err
		}
		src = pattern.Layered(src, p.Source())
		if opts.Width == 0 {
			opts.Width = p.Canvas.Width
		}
		if opts.Height == 0 {
			opts.Height = p.Canvas.Height
		}
		if opts.Seed == 0 {
			opts.Seed = p.Canvas.Seed
		}
	}
	opts.Source = src
	return opts, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func errNotFound(path string) error {
	return errs.New(errs.ErrCodeNotFound, "no route for %s", path)
}

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errs.IsInvalid(err):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrCodeNotFound), errs.Is(err, errs.ErrCodePresetNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	msg := errs.UserMessage(err)
	if status == http.StatusInternalServerError {
		loggerFrom(r.Context()).Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
