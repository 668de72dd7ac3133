package census

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationUnmarshal(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(sampleAddressResponse), &loc))

	assert.Equal(t, "4600 Silver Hill Rd, Washington, DC 20233", loc.Input.Address)
	assert.Equal(t, "Public_AR_Current", loc.Benchmark.Name)
	assert.True(t, loc.Benchmark.IsDefault)
	assert.Equal(t, "Current_Current", loc.Vintage.Name)

	require.Len(t, loc.Matches, 1)
	match := loc.Matches[0]
	assert.Equal(t, "76355984", match.TigerLine.ID)
	assert.Equal(t, "L", match.TigerLine.Side)
	assert.Equal(t, "4600", match.Components.FromAddress)
	assert.Equal(t, "4700", match.Components.ToAddress)
	assert.Equal(t, "20233", match.Components.Zip)
}

func TestLocationRoundTrip(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(sampleAddressResponse), &loc))

	encoded, err := loc.ToJSON()
	require.NoError(t, err)

	var again Location
	require.NoError(t, json.Unmarshal(encoded, &again))

	assert.Equal(t, loc.Input, again.Input)
	assert.Equal(t, loc.Benchmark, again.Benchmark)
	assert.Equal(t, loc.Vintage, again.Vintage)
	require.Len(t, again.Matches, 1)
	assert.Equal(t, loc.Matches[0].Address, again.Matches[0].Address)
	assert.Equal(t, loc.Matches[0].Coordinates, again.Matches[0].Coordinates)
	assert.Equal(t, loc.Matches[0].Geographies.Len(), again.Matches[0].Geographies.Len())
}

func TestTigerLineSide(t *testing.T) {
	var tl TigerLine
	require.NoError(t, json.Unmarshal([]byte(`{"tigerLineId":"123","side":"l"}`), &tl))
	assert.Equal(t, "L", tl.Side)

	require.NoError(t, json.Unmarshal([]byte(`{"tigerLineId":"123","side":" R "}`), &tl))
	assert.Equal(t, "R", tl.Side)

	require.NoError(t, json.Unmarshal([]byte(`{"tigerLineId":"123"}`), &tl))
	assert.Equal(t, "", tl.Side)

	err := json.Unmarshal([]byte(`{"tigerLineId":"123","side":"B"}`), &tl)
	require.Error(t, err)
}

func TestLocationInspect(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(sampleAddressResponse), &loc))

	native := loc.Inspect(false)
	assert.Contains(t, native, "Input.Address")
	assert.Contains(t, native, "Benchmark.Name")
	assert.Contains(t, native, "Matches")
	assert.NotContains(t, native, "Input.Street")

	wire := loc.Inspect(true)
	assert.Contains(t, wire, "result.input.address.address")
	assert.Contains(t, wire, "result.addressMatches")
}

func TestMatchedAddressInspect(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(sampleAddressResponse), &loc))
	match := loc.Matches[0]

	native := match.Inspect(false)
	assert.Contains(t, native, "Address")
	assert.Contains(t, native, "TigerLine.Side")
	assert.Contains(t, native, "Components.StreetName")
	assert.Contains(t, native, "Geographies")
	assert.NotContains(t, native, "Components.PreType")

	wire := match.Inspect(true)
	assert.Contains(t, wire, "matchedAddress")
	assert.Contains(t, wire, "addressComponents.streetName")
}

func TestAreaInspect(t *testing.T) {
	var c Collection
	require.NoError(t, json.Unmarshal([]byte(sampleGeographies), &c))

	county := c.Counties()[0]
	native := county.Inspect(false)
	assert.Contains(t, native, "GeoID")
	assert.Contains(t, native, "CBSACode")
	assert.NotContains(t, native, "TractCode")

	wire := county.Inspect(true)
	assert.Contains(t, wire, "GEOID")
	assert.Contains(t, wire, "CBSA")

	unknown := c.ByLayer("Quantum Sectors")[0]
	assert.Contains(t, unknown.Inspect(false), "Extensions.FLUXCAP")
	assert.Contains(t, unknown.Inspect(true), "FLUXCAP")
}

func TestVintageShorthandScoped(t *testing.T) {
	v := VintageInfo{Name: "ACS2019_Current"}
	assert.Equal(t, "ACS2019", v.Shorthand("Public_AR_Current"))
	assert.Equal(t, "", v.Shorthand("Public_AR_Census2020"))
}
