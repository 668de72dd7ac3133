// Package vocab resolves the Census Geocoder's reference vocabulary:
// benchmark, vintage, and layer names (with their historical aliases) into
// the canonical identifiers the service accepts, plus the FUNCSTAT and LSAD
// code tables used by the geography model.
package vocab

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// Canonical benchmark identifiers accepted by the geocoding service.
const (
	BenchmarkCurrent    = "Public_AR_Current"
	BenchmarkTAB2020    = "Public_AR_TAB2020"
	BenchmarkCensus2020 = "Public_AR_Census2020"
)

// Sentinel errors for vocabulary resolution failures.
var (
	ErrUnrecognizedBenchmark = eris.New("vocab: unrecognized benchmark")
	ErrUnrecognizedVintage   = eris.New("vocab: unrecognized vintage for benchmark")
	ErrUnrecognizedLayer     = eris.New("vocab: unrecognized layer")
)

// benchmarks maps upper-cased shorthand names to canonical identifiers.
// The canonical identifiers themselves are accepted as input too.
var benchmarks = map[string]string{
	"CURRENT":    BenchmarkCurrent,
	"TAB2020":    BenchmarkTAB2020,
	"CENSUS2020": BenchmarkCensus2020,
}

// vintages maps each canonical benchmark to its valid vintage shorthands.
// Vintage validity is benchmark-scoped: ACS vintages exist under Current and
// TAB2020 but not under Census2020.
var vintages = map[string]map[string]string{
	BenchmarkCurrent: {
		"CURRENT":    "Current_Current",
		"CENSUS2020": "Census2020_Current",
		"ACS2019":    "ACS2019_Current",
		"ACS2018":    "ACS2018_Current",
		"ACS2017":    "ACS2017_Current",
		"CENSUS2010": "Census2010_Current",
	},
	BenchmarkCensus2020: {
		"CENSUS2020": "Census2020_Census2020",
		"CENSUS2010": "Census2010_Census2020",
	},
	BenchmarkTAB2020: {
		"CURRENT":    "Current_TAB2020",
		"CENSUS2020": "Census2020_TAB2020",
		"ACS2019":    "ACS2019_TAB2020",
		"ACS2018":    "ACS2018_TAB2020",
		"ACS2017":    "ACS2017_TAB2020",
		"CENSUS2010": "Census2010_TAB2020",
	},
}

// ResolveBenchmark resolves a user-supplied benchmark name to its canonical
// identifier. Matching is case-insensitive and whitespace-tolerant; both the
// shorthand ("current") and canonical ("Public_AR_Current") forms resolve.
func ResolveBenchmark(name string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" {
		key = "CURRENT"
	}

	if canonical, ok := benchmarks[key]; ok {
		return canonical, nil
	}
	for _, canonical := range benchmarks {
		if strings.EqualFold(canonical, key) {
			return canonical, nil
		}
	}
	return "", eris.Wrapf(ErrUnrecognizedBenchmark, "%q", name)
}

// ResolveVintage resolves a user-supplied vintage name against a canonical
// benchmark. An empty vintage defaults to "Current" where the benchmark
// supports it.
func ResolveVintage(benchmark, name string) (string, error) {
	available, ok := vintages[benchmark]
	if !ok {
		return "", eris.Wrapf(ErrUnrecognizedBenchmark, "%q", benchmark)
	}

	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" {
		key = "CURRENT"
	}

	if canonical, ok := available[key]; ok {
		return canonical, nil
	}
	for _, canonical := range available {
		if strings.EqualFold(canonical, key) {
			return canonical, nil
		}
	}
	return "", eris.Wrapf(ErrUnrecognizedVintage, "%q under benchmark %q", name, benchmark)
}

// ResolvePair resolves a (benchmark, vintage) pair in one step, validating
// that the vintage is available within the benchmark.
func ResolvePair(benchmark, vintage string) (string, string, error) {
	b, err := ResolveBenchmark(benchmark)
	if err != nil {
		return "", "", err
	}
	v, err := ResolveVintage(b, vintage)
	if err != nil {
		return "", "", err
	}
	return b, v, nil
}

// BenchmarkShorthand returns the shorthand name ("CURRENT", "TAB2020",
// "CENSUS2020") for a canonical benchmark identifier, or "" if unknown.
func BenchmarkShorthand(canonical string) string {
	for short, c := range benchmarks {
		if c == canonical {
			return short
		}
	}
	return ""
}

// VintageShorthand returns the shorthand name for a canonical vintage
// identifier within the given canonical benchmark, or "" if unknown.
func VintageShorthand(benchmark, canonical string) string {
	for short, c := range vintages[benchmark] {
		if c == canonical {
			return short
		}
	}
	return ""
}

// Benchmarks returns the shorthand names of all supported benchmarks.
func Benchmarks() []string {
	return []string{"CURRENT", "TAB2020", "CENSUS2020"}
}

// Vintages returns the shorthand names of the vintages available within the
// given benchmark (shorthand or canonical form).
func Vintages(benchmark string) ([]string, error) {
	b, err := ResolveBenchmark(benchmark)
	if err != nil {
		return nil, err
	}

	available := vintages[b]
	names := make([]string, 0, len(available))
	for short := range available {
		names = append(names, short)
	}
	sort.Strings(names)
	return names, nil
}
