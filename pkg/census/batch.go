package census

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/census-geocoder/internal/batchfile"
	"github.com/sells-group/census-geocoder/internal/resilience"
	"github.com/sells-group/census-geocoder/internal/vocab"
)

// batchConcurrency bounds how many chunks upload at once.
const batchConcurrency = 4

// BatchResult is one row of a batch geocoding response, correlated to its
// input record by ID.
type BatchResult struct {
	ID           string      `json:"id"`
	InputAddress string      `json:"inputAddress"`
	Matched      bool        `json:"matched"`
	Tie          bool        `json:"tie,omitempty"`
	Exact        bool        `json:"exact,omitempty"`
	Address      string      `json:"matchedAddress,omitempty"`
	Coordinates  Coordinates `json:"coordinates"`
	TigerLine    TigerLine   `json:"tigerLine"`

	// FIPS columns, present only under the geographies return type.
	StateFIPS  string `json:"stateFips,omitempty"`
	CountyFIPS string `json:"countyFips,omitempty"`
	TractCode  string `json:"tractCode,omitempty"`
	BlockCode  string `json:"blockCode,omitempty"`
}

// GeocodeBatch geocodes a batch address file. Files over the service's
// 10,000-record ceiling are rejected; use GeocodeBatchRecords to chunk.
func (c *client) GeocodeBatch(ctx context.Context, path string, opts RequestOptions) ([]BatchResult, error) {
	records, err := batchfile.Read(path)
	if err != nil {
		return nil, err
	}
	opts = opts.withFallback(c.defaults)
	return c.uploadBatch(ctx, records, opts)
}

// GeocodeBatchRecords geocodes in-memory records, splitting inputs over the
// service ceiling into chunks uploaded concurrently. Results come back in
// input order.
func (c *client) GeocodeBatchRecords(ctx context.Context, records []BatchRecord, opts RequestOptions) ([]BatchResult, error) {
	if len(records) == 0 {
		return nil, nil
	}
	opts = opts.withFallback(c.defaults)

	if len(records) <= batchfile.MaxRecords {
		return c.uploadBatch(ctx, records, opts)
	}

	chunks := make([][]BatchRecord, 0, len(records)/batchfile.MaxRecords+1)
	for start := 0; start < len(records); start += batchfile.MaxRecords {
		end := start + batchfile.MaxRecords
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}

	results := make([][]BatchResult, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			res, err := c.uploadBatch(gctx, chunk, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []BatchResult
	for _, res := range results {
		merged = append(merged, res...)
	}
	return merged, nil
}

// uploadBatch performs one multipart upload and parses the CSV response.
func (c *client) uploadBatch(ctx context.Context, records []BatchRecord, opts RequestOptions) ([]BatchResult, error) {
	benchmark, vintage, err := vocab.ResolvePair(opts.Benchmark, opts.Vintage)
	if err != nil {
		return nil, err
	}
	layers, err := vocab.ResolveLayers(opts.Layers)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("benchmark", benchmark); err != nil {
		return nil, eris.Wrap(err, "census: batch write benchmark")
	}
	if err := writer.WriteField("vintage", vintage); err != nil {
		return nil, eris.Wrap(err, "census: batch write vintage")
	}
	if !(len(layers) == 1 && (layers[0] == vocab.LayersAll || layers[0] == vocab.LayersDefault)) {
		if err := writer.WriteField("layers", strings.Join(layers, ",")); err != nil {
			return nil, eris.Wrap(err, "census: batch write layers")
		}
	}

	part, err := writer.CreateFormFile("addressFile", "addresses.csv")
	if err != nil {
		return nil, eris.Wrap(err, "census: batch create form file")
	}
	if _, err := part.Write(batchfile.ToCSV(records)); err != nil {
		return nil, eris.Wrap(err, "census: batch write csv")
	}
	if err := writer.Close(); err != nil {
		return nil, eris.Wrap(err, "census: batch close writer")
	}

	reqURL := c.baseURL + "/geocoder/" + string(opts.ReturnType) + "/addressbatch"
	payload := buf.Bytes()

	var body []byte
	cfg := c.retry
	if cfg.OnRetry == nil {
		cfg.OnRetry = resilience.RetryLogger("addressbatch")
	}
	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		return resilience.Do(ctx, cfg, func(ctx context.Context) error {
			if err := c.limiter.Wait(ctx); err != nil {
				return eris.Wrap(err, "census: batch rate limit")
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
			if err != nil {
				return eris.Wrap(err, "census: batch build request")
			}
			req.Header.Set("Content-Type", writer.FormDataContentType())

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return eris.Wrap(err, "census: batch request")
			}
			defer resp.Body.Close() //nolint:errcheck

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return eris.Wrap(err, "census: batch read body")
			}

			if resp.StatusCode >= 400 {
				apiErr := &APIError{StatusCode: resp.StatusCode, Body: truncateBody(data)}
				if resilience.IsTransientHTTPStatus(resp.StatusCode) {
					return resilience.NewTransientError(apiErr, resp.StatusCode)
				}
				return apiErr
			}

			body = data
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return parseBatchResponse(body, opts.ReturnType)
}

// parseBatchResponse parses the batch CSV. Locations rows have 8 columns;
// geographies rows add state, county, tract, and block FIPS for 12.
func parseBatchResponse(body []byte, returnType ReturnType) ([]BatchResult, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1

	var results []BatchResult
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "census: parse batch response")
		}
		if len(fields) < 3 {
			continue
		}

		result := BatchResult{
			ID:           strings.TrimSpace(fields[0]),
			InputAddress: strings.TrimSpace(fields[1]),
		}
		switch strings.ToLower(strings.TrimSpace(fields[2])) {
		case "match":
			result.Matched = true
		case "tie":
			result.Tie = true
		}

		if result.Matched && len(fields) >= 8 {
			result.Exact = strings.EqualFold(strings.TrimSpace(fields[3]), "Exact")
			result.Address = strings.TrimSpace(fields[4])

			lon, lat, err := parseBatchCoords(fields[5])
			if err == nil {
				result.Coordinates = Coordinates{X: lon, Y: lat}
			}
			result.TigerLine = TigerLine{
				ID:   strings.TrimSpace(fields[6]),
				Side: strings.ToUpper(strings.TrimSpace(fields[7])),
			}

			if returnType == ReturnGeographies && len(fields) >= 12 {
				result.StateFIPS = strings.TrimSpace(fields[8])
				result.CountyFIPS = strings.TrimSpace(fields[9])
				result.TractCode = strings.TrimSpace(fields[10])
				result.BlockCode = strings.TrimSpace(fields[11])
			}
		}

		results = append(results, result)
	}
	return results, nil
}

// parseBatchCoords parses the "lon,lat" column of a batch response row.
func parseBatchCoords(coords string) (lon, lat float64, err error) {
	parts := strings.SplitN(strings.TrimSpace(coords), ",", 2)
	if len(parts) != 2 {
		return 0, 0, eris.Errorf("census: invalid batch coords %q", coords)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, eris.Wrap(err, "census: parse batch lon")
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, eris.Wrap(err, "census: parse batch lat")
	}
	return lon, lat, nil
}
