package census

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/sells-group/census-geocoder/internal/vocab"
)

// ReturnType selects which geocoder surface a request hits: address lookup
// only, or address lookup plus geographic areas.
type ReturnType string

const (
	ReturnLocations   ReturnType = "locations"
	ReturnGeographies ReturnType = "geographies"
)

// RequestOptions carries the vocabulary parameters common to every request.
// Zero values fall back to the client defaults, then to the service defaults
// (CURRENT benchmark, Current vintage, all layers).
type RequestOptions struct {
	Benchmark  string
	Vintage    string
	Layers     string
	ReturnType ReturnType
}

func (o RequestOptions) withFallback(def RequestOptions) RequestOptions {
	if o.Benchmark == "" {
		o.Benchmark = def.Benchmark
	}
	if o.Vintage == "" {
		o.Vintage = def.Vintage
	}
	if o.Layers == "" {
		o.Layers = def.Layers
	}
	if o.ReturnType == "" {
		o.ReturnType = def.ReturnType
	}
	if o.ReturnType == "" {
		o.ReturnType = ReturnGeographies
	}
	return o
}

// AddressRequest geocodes a street address, either as a single line or as
// components. When OneLine is set it wins; otherwise at least one component
// must be populated.
type AddressRequest struct {
	OneLine string
	Street  string
	City    string
	State   string
	Zip     string

	RequestOptions
}

// CoordinateRequest looks up the geographic areas containing a point.
// Coordinates mode is only served by the geographies return type.
type CoordinateRequest struct {
	Longitude float64
	Latitude  float64

	RequestOptions
}

// resolveVocabulary resolves benchmark, vintage, and layers into the base
// query parameters every request carries.
func resolveVocabulary(opts RequestOptions) (url.Values, error) {
	benchmark, vintage, err := vocab.ResolvePair(opts.Benchmark, opts.Vintage)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"benchmark": {benchmark},
		"vintage":   {vintage},
		"format":    {"json"},
	}

	layers, err := vocab.ResolveLayers(opts.Layers)
	if err != nil {
		return nil, err
	}
	// "all" is the service default; omitting the parameter means the same.
	if !(len(layers) == 1 && (layers[0] == vocab.LayersAll || layers[0] == vocab.LayersDefault)) {
		params.Set("layers", strings.Join(layers, ","))
	}
	return params, nil
}

// buildAddressQuery builds the request path and parameters for an address
// request.
func buildAddressQuery(req AddressRequest) (string, url.Values, error) {
	params, err := resolveVocabulary(req.RequestOptions)
	if err != nil {
		return "", nil, err
	}

	if oneLine := strings.TrimSpace(req.OneLine); oneLine != "" {
		params.Set("address", oneLine)
		return "/geocoder/" + string(req.ReturnType) + "/onelineaddress", params, nil
	}

	components := 0
	for key, value := range map[string]string{
		"street": req.Street,
		"city":   req.City,
		"state":  req.State,
		"zip":    req.Zip,
	} {
		if v := strings.TrimSpace(value); v != "" {
			params.Set(key, v)
			components++
		}
	}
	if components == 0 {
		return "", nil, ErrNoAddress
	}
	return "/geocoder/" + string(req.ReturnType) + "/address", params, nil
}

// buildCoordinateQuery builds the request path and parameters for a
// coordinate request. The service only serves coordinates under the
// geographies return type.
func buildCoordinateQuery(req CoordinateRequest) (string, url.Values, error) {
	req.ReturnType = ReturnGeographies
	params, err := resolveVocabulary(req.RequestOptions)
	if err != nil {
		return "", nil, err
	}
	params.Set("x", strconv.FormatFloat(req.Longitude, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(req.Latitude, 'f', -1, 64))
	return "/geocoder/geographies/coordinates", params, nil
}
