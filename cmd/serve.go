package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/census-geocoder/pkg/census"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an HTTP facade over the geocoder",
	Long:  "Serves geocoding endpoints that accept friendly benchmark, vintage, and layer names and proxy to the Census Geocoder with rate limiting, retries, and caching applied.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		client, cleanup, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/geocode", handleGeocode(client))
		r.Get("/coordinates", handleCoordinates(client))
		r.Post("/batch", handleBatch(client))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// requestOptionsFromQuery builds request options from query parameters,
// falling back to the configured defaults.
func requestOptionsFromQuery(req *http.Request) census.RequestOptions {
	opts := census.RequestOptions{
		Benchmark:  cfg.Geocoder.Benchmark,
		Vintage:    cfg.Geocoder.Vintage,
		Layers:     cfg.Geocoder.Layers,
		ReturnType: census.ReturnType(cfg.Geocoder.ReturnType),
	}
	q := req.URL.Query()
	if v := q.Get("benchmark"); v != "" {
		opts.Benchmark = v
	}
	if v := q.Get("vintage"); v != "" {
		opts.Vintage = v
	}
	if v := q.Get("layers"); v != "" {
		opts.Layers = v
	}
	if q.Get("locations") == "true" {
		opts.ReturnType = census.ReturnLocations
	}
	return opts
}

func handleGeocode(client census.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		loc, err := client.GeocodeAddress(req.Context(), census.AddressRequest{
			OneLine:        q.Get("address"),
			Street:         q.Get("street"),
			City:           q.Get("city"),
			State:          q.Get("state"),
			Zip:            q.Get("zip"),
			RequestOptions: requestOptionsFromQuery(req),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeLocation(w, loc)
	}
}

func handleCoordinates(client census.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		lon, errX := strconv.ParseFloat(q.Get("x"), 64)
		lat, errY := strconv.ParseFloat(q.Get("y"), 64)
		if errX != nil || errY != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "x and y must be decimal degrees"})
			return
		}
		loc, err := client.GeocodeCoordinates(req.Context(), census.CoordinateRequest{
			Longitude:      lon,
			Latitude:       lat,
			RequestOptions: requestOptionsFromQuery(req),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeLocation(w, loc)
	}
}

func handleBatch(client census.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Records []census.BatchRecord `json:"records"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if len(body.Records) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "records is required"})
			return
		}

		results, err := client.GeocodeBatchRecords(req.Context(), body.Records, requestOptionsFromQuery(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": results})
	}
}

func writeLocation(w http.ResponseWriter, loc *census.Location) {
	data, err := loc.ToJSON()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps client errors to HTTP statuses. Vocabulary and input
// errors are the caller's fault; upstream failures surface as 502.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case eris.Is(err, census.ErrUnrecognizedBenchmark),
		eris.Is(err, census.ErrUnrecognizedVintage),
		eris.Is(err, census.ErrUnrecognizedLayer),
		eris.Is(err, census.ErrNoAddress),
		eris.Is(err, census.ErrBatchTooLarge):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		if apiErr, ok := census.IsAPIError(err); ok {
			zap.L().Warn("upstream geocoder error", zap.Int("status", apiErr.StatusCode))
		} else {
			zap.L().Error("geocode request failed", zap.Error(err))
		}
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "geocoding service unavailable"})
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
