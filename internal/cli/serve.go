package cli

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/pokedex"
)

const (
	// requestIDHeader carries the request id to and from clients.
	requestIDHeader = "X-Request-Id"

	shutdownTimeout = 10 * time.Second
)

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON load API",
		Long: `Serve the listing, detail and category views as JSON.

Routes:
  GET /api/pokemon?limit=N&q=&type=&region=
  GET /api/pokemon/{id}
  GET /api/types
  GET /api/regions/{region}
  GET /api/generations
  GET /api/generations/{id}
  GET /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}

			svc, closeCache, err := c.newService(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(svc, c.cfg.Limit, logger),
				ReadHeaderTimeout: 10 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			printSuccess("Serving on %s", StyleHighlight.Render(addr))
			printDetail("cache: %s", c.cfg.Cache.Backend)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// =============================================================================
// Router
// =============================================================================

// api serves the aggregated views over HTTP.
type api struct {
	svc    *pokedex.Service
	limit  int
	logger *log.Logger
}

// newRouter builds the HTTP handler for the load API. limit is the listing
// size used when a request does not pass one.
func newRouter(svc *pokedex.Service, limit int, logger *log.Logger) http.Handler {
	a := &api{svc: svc, limit: limit, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/pokemon", a.listPokemon)
		r.Get("/pokemon/{id}", a.getPokemon)
		r.Get("/types", a.listTypes)
		r.Get("/regions/{region}", a.listRegion)
		r.Get("/generations", a.listGenerations)
		r.Get("/generations/{id}", a.getGeneration)
	})

	return r
}

// requestID tags each request with a UUID, reusing a client-supplied one.
// The id is stored where chi's middleware.GetReqID finds it.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *api) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start).Round(time.Millisecond),
			"id", middleware.GetReqID(r.Context()))
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (a *api) listPokemon(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := a.limit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	ctx := r.Context()
	entries := a.svc.ListAll(ctx, limit)
	filter := pokedex.Filter{Query: q.Get("q"), Types: q["type"], Regions: q["region"]}
	entries = filter.Apply(ctx, a.svc, entries)
	writeJSONResponse(w, http.StatusOK, entries)
}

func (a *api) getPokemon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	detail, ok := a.svc.GetDetail(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "pokemon not found")
		return
	}
	writeJSONResponse(w, http.StatusOK, detail)
}

func (a *api) listTypes(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, a.svc.ListTypeCategories(r.Context()))
}

func (a *api) listRegion(w http.ResponseWriter, r *http.Request) {
	names := a.svc.ListByRegion(r.Context(), chi.URLParam(r, "region"))
	writeJSONResponse(w, http.StatusOK, names)
}

func (a *api) listGenerations(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, a.svc.Generations(r.Context()))
}

func (a *api) getGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "generation id must be an integer")
		return
	}
	gen, ok := a.svc.Generation(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "generation not found")
		return
	}
	writeJSONResponse(w, http.StatusOK, gen)
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSONResponse(w, status, errorBody{Error: msg})
}

func writeJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = writeJSON(w, v)
}
