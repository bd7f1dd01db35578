package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/parallelowow/internal/server"
	"github.com/matzehuels/parallelowow/pkg/cache"
	"github.com/matzehuels/parallelowow/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string // listen address
	redisAddr     string // Redis address; empty uses the file cache
	redisPassword string // Redis password
	redisDB       int    // Redis database number
	scope         string // cache key scope shared by one deployment
	noCache       bool   // disable the artifact cache
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve patterns over HTTP",
		Long: `Serve renders patterns on request at /pattern.{svg,png,pdf,json}.

Artifacts are cached in Redis when --redis-addr is set and in the local
cache directory otherwise. Prometheus metrics are exposed at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for the artifact cache (host:port)")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&opts.scope, "cache-scope", "", "prefix for cache keys, to separate deployments sharing one Redis database")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.MarkFlagsMutuallyExclusive("redis-addr", "no-cache")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFor(cmd)

	var (
		ac  cache.Cache
		err error
	)
	if opts.redisAddr != "" {
		ac, err = cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     opts.redisAddr,
			Password: opts.redisPassword,
			DB:       opts.redisDB,
			Prefix:   appName + ":",
		})
		if err != nil {
			return err
		}
		logger.Info("using redis cache", "addr", opts.redisAddr, "db", opts.redisDB)
	} else {
		ac, err = newCache(opts.noCache)
		if err != nil {
			return err
		}
		if fc, ok := ac.(*cache.FileCache); ok {
			logger.Info("using file cache", "dir", fc.Dir())
		}
	}

	var keyer cache.Keyer
	if opts.scope != "" {
		keyer = cache.NewScopedKeyer(nil, opts.scope+":")
	}
	runner := pipeline.NewRunner(ac, keyer, logger)
	defer runner.Close()

	server.InstallMetrics()
	srv := server.New(runner, server.WithLogger(logger))
	printInfo("Serving patterns on %s", StyleHighlight.Render(opts.addr))
	return srv.ListenAndServe(ctx, opts.addr)
}
