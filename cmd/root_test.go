package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/census-geocoder/internal/config"
	"github.com/sells-group/census-geocoder/pkg/census"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	orig := cfg
	c := &config.Config{}
	c.Geocoder.BaseURL = "https://geocoding.geo.census.gov"
	c.Geocoder.Benchmark = "CURRENT"
	c.Geocoder.Vintage = "Current"
	c.Geocoder.Layers = "all"
	c.Geocoder.ReturnType = "geographies"
	c.Geocoder.RateLimit = 50
	c.Server.Port = 8080
	cfg = c
	t.Cleanup(func() { cfg = orig })
}

func resetFlags(t *testing.T) {
	t.Helper()
	origB, origV, origL, origLoc := flagBenchmark, flagVintage, flagLayers, flagLocations
	t.Cleanup(func() {
		flagBenchmark, flagVintage, flagLayers, flagLocations = origB, origV, origL, origLoc
	})
}

func TestRequestOptionsDefaultsFromConfig(t *testing.T) {
	setTestConfig(t)
	resetFlags(t)
	flagBenchmark, flagVintage, flagLayers, flagLocations = "", "", "", false

	opts := requestOptions()
	assert.Equal(t, "CURRENT", opts.Benchmark)
	assert.Equal(t, "Current", opts.Vintage)
	assert.Equal(t, "all", opts.Layers)
	assert.Equal(t, census.ReturnGeographies, opts.ReturnType)
}

func TestRequestOptionsFlagsOverrideConfig(t *testing.T) {
	setTestConfig(t)
	resetFlags(t)
	flagBenchmark = "Census2020"
	flagVintage = "Census2020"
	flagLayers = "counties, tracts"
	flagLocations = true

	opts := requestOptions()
	assert.Equal(t, "Census2020", opts.Benchmark)
	assert.Equal(t, "Census2020", opts.Vintage)
	assert.Equal(t, "counties, tracts", opts.Layers)
	assert.Equal(t, census.ReturnLocations, opts.ReturnType)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"geocode", "coordinates", "batch", "vocab", "serve"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
