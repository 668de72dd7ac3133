package vocab

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBenchmark(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"shorthand current", "CURRENT", BenchmarkCurrent, nil},
		{"lowercase shorthand", "current", BenchmarkCurrent, nil},
		{"mixed case", "Tab2020", BenchmarkTAB2020, nil},
		{"census2020", "census2020", BenchmarkCensus2020, nil},
		{"canonical passthrough", "Public_AR_Current", BenchmarkCurrent, nil},
		{"canonical case-insensitive", "public_ar_census2020", BenchmarkCensus2020, nil},
		{"whitespace tolerated", "  current  ", BenchmarkCurrent, nil},
		{"empty defaults to current", "", BenchmarkCurrent, nil},
		{"unknown", "Public_AR_2015", "", ErrUnrecognizedBenchmark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBenchmark(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, eris.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveVintage(t *testing.T) {
	tests := []struct {
		name      string
		benchmark string
		input     string
		want      string
		wantErr   error
	}{
		{"current under current", BenchmarkCurrent, "Current", "Current_Current", nil},
		{"acs2019 under current", BenchmarkCurrent, "acs2019", "ACS2019_Current", nil},
		{"census2020 under current", BenchmarkCurrent, "CENSUS2020", "Census2020_Current", nil},
		{"census2010 under census2020", BenchmarkCensus2020, "census2010", "Census2010_Census2020", nil},
		{"acs2018 under tab2020", BenchmarkTAB2020, "ACS2018", "ACS2018_TAB2020", nil},
		{"canonical passthrough", BenchmarkCurrent, "ACS2019_Current", "ACS2019_Current", nil},
		{"empty defaults to current", BenchmarkCurrent, "", "Current_Current", nil},
		{"acs invalid under census2020", BenchmarkCensus2020, "ACS2019", "", ErrUnrecognizedVintage},
		{"unknown vintage", BenchmarkCurrent, "ACS2031", "", ErrUnrecognizedVintage},
		{"unknown benchmark", "Public_AR_2015", "Current", "", ErrUnrecognizedBenchmark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveVintage(tt.benchmark, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, eris.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePair(t *testing.T) {
	b, v, err := ResolvePair("census2020", "census2010")
	require.NoError(t, err)
	assert.Equal(t, BenchmarkCensus2020, b)
	assert.Equal(t, "Census2010_Census2020", v)

	// Defaults cascade when both are empty.
	b, v, err = ResolvePair("", "")
	require.NoError(t, err)
	assert.Equal(t, BenchmarkCurrent, b)
	assert.Equal(t, "Current_Current", v)

	_, _, err = ResolvePair("current", "ACS2019_Census2020")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnrecognizedVintage))
}

func TestShorthands(t *testing.T) {
	assert.Equal(t, "CURRENT", BenchmarkShorthand(BenchmarkCurrent))
	assert.Equal(t, "CENSUS2020", BenchmarkShorthand(BenchmarkCensus2020))
	assert.Equal(t, "", BenchmarkShorthand("Public_AR_2015"))

	assert.Equal(t, "ACS2019", VintageShorthand(BenchmarkCurrent, "ACS2019_Current"))
	assert.Equal(t, "", VintageShorthand(BenchmarkCurrent, "ACS2019_TAB2020"))
}

func TestVintages(t *testing.T) {
	names, err := Vintages("current")
	require.NoError(t, err)
	assert.Equal(t, []string{"ACS2017", "ACS2018", "ACS2019", "CENSUS2010", "CENSUS2020", "CURRENT"}, names)

	names, err = Vintages("census2020")
	require.NoError(t, err)
	assert.Equal(t, []string{"CENSUS2010", "CENSUS2020"}, names)

	_, err = Vintages("bogus")
	require.Error(t, err)
}
