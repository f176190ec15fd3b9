package cli

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/loracharts/pkg/api"
	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/observability"
)

// readHeaderTimeout bounds how long a client may take to send request headers.
const readHeaderTimeout = 5 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	cors      bool
	metrics   bool
	themePath string
	heuristic bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and formatting API over HTTP",
		Long: `Serve the label layout, formatting, color and scale operations as a JSON
API. Flags default to the [serve] section of the config file.

The server stops gracefully on interrupt, waiting up to the configured
shutdown timeout for in-flight requests.`,
		Example: `  loracharts serve --addr :8080 --metrics
  curl -XPOST localhost:8080/v1/labels/rotation -d '{"width":300,"labels":["a","b"]}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				opts.addr = c.config.Serve.Addr
			}
			if !cmd.Flags().Changed("cors") {
				opts.cors = c.config.Serve.CORS
			}
			if !cmd.Flags().Changed("metrics") {
				opts.metrics = c.config.Serve.Metrics
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&opts.cors, "cors", false, "allow cross-origin requests")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "expose Prometheus metrics on /metrics")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "theme served on /v1/theme")
	cmd.Flags().BoolVar(&opts.heuristic, "heuristic", false, "measure with the length heuristic")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	h, err := c.serviceHandler(logger, opts)
	if err != nil {
		return err
	}
	defer observability.Reset()

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "listen on %s", opts.addr)
	}
	return serve(ctx, ln, h, c.config.Serve.ShutdownTimeout, logger)
}

// serviceHandler builds the API handler logging to logger and installs the
// layout and HTTP hooks it reports to. Callers restore the hooks with
// observability.Reset.
func (c *CLI) serviceHandler(logger *log.Logger, opts serveOpts) (http.Handler, error) {
	t, err := c.loadTheme(opts.themePath)
	if err != nil {
		return nil, err
	}

	hooks := logHooks{logger: logger}
	cfg := api.Config{
		Measurer:   c.newMeasurer(opts.heuristic),
		Theme:      t,
		Logger:     logger,
		EnableCORS: opts.cors,
	}
	if opts.metrics {
		prom := observability.NewPrometheus()
		cfg.Metrics = prom.Handler()
		multi := observability.Multi{hooks, prom}
		observability.SetLayoutHooks(multi)
		observability.SetHTTPHooks(multi)
	} else {
		observability.SetLayoutHooks(hooks)
		observability.SetHTTPHooks(hooks)
	}
	return api.NewHandler(cfg), nil
}

// serve runs the handler on ln until ctx is cancelled, then shuts down,
// waiting up to timeout for open requests.
func serve(ctx context.Context, ln net.Listener, h http.Handler, timeout time.Duration, logger *log.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(errors.ErrCodeInternal, err, "serve")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
