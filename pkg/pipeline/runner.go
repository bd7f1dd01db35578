package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/parallelowow/pkg/cache"
	errs "github.com/matzehuels/parallelowow/pkg/errors"
	"github.com/matzehuels/parallelowow/pkg/observability"
	"github.com/matzehuels/parallelowow/pkg/pattern"
	"github.com/matzehuels/parallelowow/pkg/sink"
)

// cacheKeyType labels artifact entries in cache hooks.
const cacheKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute resolves the style and renders every requested format, serving
// artifacts from the cache where possible.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	frame := sink.Frame{
		Region: opts.Region(),
		Style:  r.ResolveStyle(ctx, opts),
		Seed:   opts.Seed,
	}
	frameHash, err := cache.HashJSON(frame)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "hash frame")
	}

	result = &Result{
		Frame:     frame,
		FrameHash: frameHash,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheInfo: CacheInfo{Hits: make(map[string]bool, len(opts.Formats)), RenderHit: true},
	}

	drawn := false
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, stats, hit, err := r.RenderFormatWithCacheInfo(ctx, frame, frameHash, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.Stats.Bytes += len(data)
		result.CacheInfo.Hits[format] = hit
		if !hit {
			result.CacheInfo.RenderHit = false
			result.Stats.Stats = stats
			drawn = true
		}
	}
	if !drawn {
		result.Stats.Stats = frame.Draw(sink.Discard)
	}
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered pattern",
		"formats", opts.Formats,
		"tiles", result.Stats.Drawn,
		"skipped", result.Stats.Skipped,
		"cached", result.CacheInfo.RenderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveStyle parses the style from opts. Properties that fall back to
// their defaults are logged as warnings and reported to the pipeline hooks.
func (r *Runner) ResolveStyle(ctx context.Context, opts Options) pattern.Style {
	r.applyLogger(&opts)
	st, err := pattern.ParseStyle(opts.StyleSource())
	for _, fe := range pattern.FieldErrors(err) {
		observability.Pipeline().OnStyleFallback(ctx, fe.Property)
		opts.Logger.Warn("style property ignored, using default",
			"property", fe.Property,
			"value", fe.Value,
			"reason", errs.UserMessage(fe.Err))
	}
	return st
}

// RenderFormatWithCacheInfo renders one format of a frame, consulting the
// cache first unless opts.Refresh is set. The returned stats are zero on a
// cache hit.
func (r *Runner) RenderFormatWithCacheInfo(ctx context.Context, f sink.Frame, frameHash, format string, opts Options) ([]byte, pattern.Stats, bool, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, pattern.Stats{}, false, err
	}
	r.applyLogger(&opts)

	key := r.Keyer.ArtifactKey(frameHash, artifactKeyOpts(format, opts))
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		case hit:
			cacheHooks.OnCacheHit(ctx, cacheKeyType)
			opts.Logger.Debug("cache hit", "format", format, "bytes", len(data))
			return data, pattern.Stats{}, true, nil
		default:
			cacheHooks.OnCacheMiss(ctx, cacheKeyType)
		}
	}

	start := time.Now()
	data, stats, err := RenderFormat(ctx, f, format, opts)
	observability.Pipeline().OnFormatComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, stats, false, err
	}
	opts.Logger.Debug("rendered format",
		"format", format,
		"bytes", len(data),
		"duration", time.Since(start))

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		cacheHooks.OnCacheSet(ctx, cacheKeyType, len(data))
	}
	return data, stats, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// artifactKeyOpts returns cache key options for one format. Only PNG bytes
// depend on the scale.
func artifactKeyOpts(format string, opts Options) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		k.Scale = opts.Scale
	}
	return k
}
