package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/census-geocoder/pkg/census"
)

// fakeClient records the last request it saw and returns canned results.
type fakeClient struct {
	lastAddress     *census.AddressRequest
	lastCoordinates *census.CoordinateRequest
	lastRecords     []census.BatchRecord

	location *census.Location
	results  []census.BatchResult
	err      error
}

func (f *fakeClient) GeocodeAddress(ctx context.Context, req census.AddressRequest) (*census.Location, error) {
	f.lastAddress = &req
	return f.location, f.err
}

func (f *fakeClient) GeocodeCoordinates(ctx context.Context, req census.CoordinateRequest) (*census.Location, error) {
	f.lastCoordinates = &req
	return f.location, f.err
}

func (f *fakeClient) GeocodeBatch(ctx context.Context, path string, opts census.RequestOptions) ([]census.BatchResult, error) {
	return f.results, f.err
}

func (f *fakeClient) GeocodeBatchRecords(ctx context.Context, records []census.BatchRecord, opts census.RequestOptions) ([]census.BatchResult, error) {
	f.lastRecords = records
	return f.results, f.err
}

func matchedLocation() *census.Location {
	return &census.Location{
		Input: census.InputAddress{Address: "4600 Silver Hill Rd, Washington, DC 20233"},
		Matches: []census.MatchedAddress{{
			Address:     "4600 SILVER HILL RD, WASHINGTON, DC, 20233",
			Coordinates: census.Coordinates{X: -76.92744, Y: 38.845985},
			TigerLine:   census.TigerLine{ID: "76355984", Side: "L"},
		}},
	}
}

func TestHandleGeocode(t *testing.T) {
	setTestConfig(t)
	fake := &fakeClient{location: matchedLocation()}

	req := httptest.NewRequest(http.MethodGet, "/geocode?address=4600+Silver+Hill+Rd&benchmark=Census2020&vintage=Census2020&layers=counties", nil)
	rec := httptest.NewRecorder()
	handleGeocode(fake)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	require.NotNil(t, fake.lastAddress)
	assert.Equal(t, "4600 Silver Hill Rd", fake.lastAddress.OneLine)
	assert.Equal(t, "Census2020", fake.lastAddress.Benchmark)
	assert.Equal(t, "Census2020", fake.lastAddress.Vintage)
	assert.Equal(t, "counties", fake.lastAddress.Layers)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "result")
}

func TestHandleGeocodeLocationsToggle(t *testing.T) {
	setTestConfig(t)
	fake := &fakeClient{location: matchedLocation()}

	req := httptest.NewRequest(http.MethodGet, "/geocode?address=x&locations=true", nil)
	handleGeocode(fake)(httptest.NewRecorder(), req)

	require.NotNil(t, fake.lastAddress)
	assert.Equal(t, census.ReturnLocations, fake.lastAddress.ReturnType)
}

func TestHandleGeocodeBadVocabulary(t *testing.T) {
	setTestConfig(t)
	fake := &fakeClient{err: census.ErrUnrecognizedBenchmark}

	req := httptest.NewRequest(http.MethodGet, "/geocode?address=x&benchmark=bogus", nil)
	rec := httptest.NewRecorder()
	handleGeocode(fake)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGeocodeUpstreamFailure(t *testing.T) {
	setTestConfig(t)
	fake := &fakeClient{err: &census.APIError{StatusCode: 500, Body: "oops"}}

	req := httptest.NewRequest(http.MethodGet, "/geocode?address=x", nil)
	rec := httptest.NewRecorder()
	handleGeocode(fake)(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleCoordinates(t *testing.T) {
	setTestConfig(t)
	fake := &fakeClient{location: matchedLocation()}

	req := httptest.NewRequest(http.MethodGet, "/coordinates?x=-76.92744&y=38.845985", nil)
	rec := httptest.NewRecorder()
	handleCoordinates(fake)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fake.lastCoordinates)
	assert.InDelta(t, -76.92744, fake.lastCoordinates.Longitude, 0.000001)
	assert.InDelta(t, 38.845985, fake.lastCoordinates.Latitude, 0.000001)
}

func TestHandleCoordinatesRejectsNonNumeric(t *testing.T) {
	setTestConfig(t)
	fake := &fakeClient{}

	req := httptest.NewRequest(http.MethodGet, "/coordinates?x=east&y=north", nil)
	rec := httptest.NewRecorder()
	handleCoordinates(fake)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, fake.lastCoordinates)
}

func TestHandleBatch(t *testing.T) {
	setTestConfig(t)
	fake := &fakeClient{results: []census.BatchResult{
		{ID: "1", Matched: true, Address: "4600 SILVER HILL RD"},
		{ID: "2"},
	}}

	payload := `{"records":[{"id":"1","street":"4600 Silver Hill Rd","city":"Washington","state":"DC","zip":"20233"},{"id":"2","street":"nowhere"}]}`
	req := httptest.NewRequest(http.MethodPost, "/batch", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handleBatch(fake)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, fake.lastRecords, 2)

	var body struct {
		Results []census.BatchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Results, 2)
	assert.True(t, body.Results[0].Matched)
}

func TestHandleBatchRejectsEmpty(t *testing.T) {
	setTestConfig(t)
	fake := &fakeClient{}

	req := httptest.NewRequest(http.MethodPost, "/batch", strings.NewReader(`{"records":[]}`))
	rec := httptest.NewRecorder()
	handleBatch(fake)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, fake.lastRecords)
}
