package census

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/census-geocoder/internal/vocab"
)

// BenchmarkInfo echoes the benchmark the service resolved the request
// against.
type BenchmarkInfo struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"benchmarkName,omitempty"`
	Description string `json:"benchmarkDescription,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

// Shorthand returns the friendly benchmark name ("CURRENT", "TAB2020",
// "CENSUS2020") for the echoed benchmark, or "" if unknown.
func (b BenchmarkInfo) Shorthand() string {
	return vocab.BenchmarkShorthand(b.Name)
}

// VintageInfo echoes the vintage the service resolved the request against.
type VintageInfo struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"vintageName,omitempty"`
	Description string `json:"vintageDescription,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

// Shorthand returns the friendly vintage name for the echoed vintage under
// the given canonical benchmark, or "" if unknown.
func (v VintageInfo) Shorthand(benchmark string) string {
	return vocab.VintageShorthand(benchmark, v.Name)
}

// InputAddress echoes the address the service received, either as a single
// line or as components.
type InputAddress struct {
	Address string `json:"address,omitempty"`
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// Coordinates is a longitude/latitude pair as the service encodes it.
type Coordinates struct {
	X float64 `json:"x"` // longitude
	Y float64 `json:"y"` // latitude
}

// Point returns the coordinates as an XY geometry point.
func (c Coordinates) Point() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.X, c.Y})
}

// TigerLine identifies the TIGER/Line segment an address matched, and which
// side of the street it falls on.
type TigerLine struct {
	ID   string `json:"tigerLineId,omitempty"`
	Side string `json:"side,omitempty"` // "L" or "R"
}

type tigerLineWire TigerLine

// UnmarshalJSON decodes a tigerLine object, normalizing the side to upper
// case and rejecting values other than L and R.
func (t *TigerLine) UnmarshalJSON(data []byte) error {
	var wire tigerLineWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return eris.Wrap(err, "census: decode tigerLine")
	}
	wire.Side = strings.ToUpper(strings.TrimSpace(wire.Side))
	if wire.Side != "" && wire.Side != "L" && wire.Side != "R" {
		return eris.Errorf("census: invalid tigerLine side %q", wire.Side)
	}
	*t = TigerLine(wire)
	return nil
}

// AddressComponents is the parsed decomposition of a matched address.
type AddressComponents struct {
	FromAddress     string `json:"fromAddress,omitempty"`
	ToAddress       string `json:"toAddress,omitempty"`
	PreQualifier    string `json:"preQualifier,omitempty"`
	PreDirection    string `json:"preDirection,omitempty"`
	PreType         string `json:"preType,omitempty"`
	StreetName      string `json:"streetName,omitempty"`
	SuffixType      string `json:"suffixType,omitempty"`
	SuffixDirection string `json:"suffixDirection,omitempty"`
	SuffixQualifier string `json:"suffixQualifier,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	Zip             string `json:"zip,omitempty"`
}

// MatchedAddress is a single candidate match for a geocoded address.
type MatchedAddress struct {
	Address     string            `json:"matchedAddress,omitempty"`
	Coordinates Coordinates       `json:"coordinates"`
	TigerLine   TigerLine         `json:"tigerLine"`
	Components  AddressComponents `json:"addressComponents"`
	Geographies *Collection       `json:"geographies,omitempty"`
}

// Location is the full result of a geocoding request: the input echo plus
// zero or more matched addresses. Zero matches is not an error.
type Location struct {
	Input     InputAddress     `json:"-"`
	Benchmark BenchmarkInfo    `json:"-"`
	Vintage   VintageInfo      `json:"-"`
	Matches   []MatchedAddress `json:"-"`
}

// Matched reports whether the service found at least one candidate match.
func (l *Location) Matched() bool {
	return len(l.Matches) > 0
}

// BenchmarkShorthand returns the friendly name of the benchmark the result
// was resolved against.
func (l *Location) BenchmarkShorthand() string {
	return l.Benchmark.Shorthand()
}

// VintageShorthand returns the friendly name of the vintage the result was
// resolved against.
func (l *Location) VintageShorthand() string {
	return l.Vintage.Shorthand(l.Benchmark.Name)
}

// locationWire mirrors the service's response envelope.
type locationWire struct {
	Result struct {
		Input struct {
			Address   InputAddress  `json:"address"`
			Benchmark BenchmarkInfo `json:"benchmark"`
			Vintage   VintageInfo   `json:"vintage"`
		} `json:"input"`
		AddressMatches []MatchedAddress `json:"addressMatches"`
	} `json:"result"`
}

// UnmarshalJSON decodes the service's response envelope into the Location.
func (l *Location) UnmarshalJSON(data []byte) error {
	var wire locationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return eris.Wrap(err, "census: decode location")
	}
	l.Input = wire.Result.Input.Address
	l.Benchmark = wire.Result.Input.Benchmark
	l.Vintage = wire.Result.Input.Vintage
	l.Matches = wire.Result.AddressMatches
	return nil
}

// MarshalJSON encodes the Location back into the service's envelope, so a
// decoded response re-encodes to the same structure.
func (l Location) MarshalJSON() ([]byte, error) {
	var wire locationWire
	wire.Result.Input.Address = l.Input
	wire.Result.Input.Benchmark = l.Benchmark
	wire.Result.Input.Vintage = l.Vintage
	wire.Result.AddressMatches = l.Matches
	return json.Marshal(wire)
}

// ToJSON serializes the Location in the service's wire structure.
func (l *Location) ToJSON() ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, eris.Wrap(err, "census: encode location")
	}
	return data, nil
}

// Inspect lists the populated fields of the location. With censusFields set,
// fields appear under the service's wire names instead of the native ones.
func (l *Location) Inspect(censusFields bool) []string {
	var fields []string
	add := func(native, wire, value string) {
		if value == "" {
			return
		}
		if censusFields {
			fields = append(fields, wire)
		} else {
			fields = append(fields, native)
		}
	}

	add("Input.Address", "result.input.address.address", l.Input.Address)
	add("Input.Street", "result.input.address.street", l.Input.Street)
	add("Input.City", "result.input.address.city", l.Input.City)
	add("Input.State", "result.input.address.state", l.Input.State)
	add("Input.Zip", "result.input.address.zip", l.Input.Zip)
	add("Benchmark.Name", "result.input.benchmark.benchmarkName", l.Benchmark.Name)
	add("Vintage.Name", "result.input.vintage.vintageName", l.Vintage.Name)
	if len(l.Matches) > 0 {
		add("Matches", "result.addressMatches", "populated")
	}
	return fields
}

// Inspect lists the populated fields of the matched address. With
// censusFields set, fields appear under the service's wire names.
func (m *MatchedAddress) Inspect(censusFields bool) []string {
	var fields []string
	add := func(native, wire, value string) {
		if value == "" {
			return
		}
		if censusFields {
			fields = append(fields, wire)
		} else {
			fields = append(fields, native)
		}
	}

	add("Address", "matchedAddress", m.Address)
	if m.Coordinates.X != 0 || m.Coordinates.Y != 0 {
		add("Coordinates", "coordinates", "populated")
	}
	add("TigerLine.ID", "tigerLine.tigerLineId", m.TigerLine.ID)
	add("TigerLine.Side", "tigerLine.side", m.TigerLine.Side)
	add("Components.FromAddress", "addressComponents.fromAddress", m.Components.FromAddress)
	add("Components.ToAddress", "addressComponents.toAddress", m.Components.ToAddress)
	add("Components.PreQualifier", "addressComponents.preQualifier", m.Components.PreQualifier)
	add("Components.PreDirection", "addressComponents.preDirection", m.Components.PreDirection)
	add("Components.PreType", "addressComponents.preType", m.Components.PreType)
	add("Components.StreetName", "addressComponents.streetName", m.Components.StreetName)
	add("Components.SuffixType", "addressComponents.suffixType", m.Components.SuffixType)
	add("Components.SuffixDirection", "addressComponents.suffixDirection", m.Components.SuffixDirection)
	add("Components.SuffixQualifier", "addressComponents.suffixQualifier", m.Components.SuffixQualifier)
	add("Components.City", "addressComponents.city", m.Components.City)
	add("Components.State", "addressComponents.state", m.Components.State)
	add("Components.Zip", "addressComponents.zip", m.Components.Zip)
	if m.Geographies != nil && m.Geographies.Len() > 0 {
		add("Geographies", "geographies", "populated")
	}
	return fields
}

// Inspect lists the populated fields of the area. With censusFields set,
// fields appear under the service's wire names.
func (a *Area) Inspect(censusFields bool) []string {
	var fields []string
	add := func(native, wire, value string) {
		if value == "" {
			return
		}
		if censusFields {
			fields = append(fields, wire)
		} else {
			fields = append(fields, native)
		}
	}

	add("GeoID", "GEOID", a.GeoID)
	add("OID", "OID", a.OID)
	if a.ObjectID != 0 {
		add("ObjectID", "OBJECTID", "populated")
	}
	add("Name", "NAME", a.Name)
	add("BaseName", "BASENAME", a.BaseName)
	add("FuncStat", "FUNCSTAT", a.FuncStat)
	add("LSAD", "LSAD", a.LSAD)
	add("MTFCC", "MTFCC", a.MTFCC)
	add("CentLat", "CENTLAT", a.CentLat)
	add("CentLon", "CENTLON", a.CentLon)
	add("IntPtLat", "INTPTLAT", a.IntPtLat)
	add("IntPtLon", "INTPTLON", a.IntPtLon)
	if a.LandArea != 0 {
		add("LandArea", "AREALAND", "populated")
	}
	if a.WaterArea != 0 {
		add("WaterArea", "AREAWATER", "populated")
	}
	if a.Pop100 != 0 {
		add("Pop100", "POP100", "populated")
	}
	if a.HU100 != 0 {
		add("HU100", "HU100", "populated")
	}
	add("StateFIPS", "STATE", a.StateFIPS)
	add("CountyFIPS", "COUNTY", a.CountyFIPS)
	add("TractCode", "TRACT", a.TractCode)
	add("BlockGroup", "BLKGRP", a.BlockGroup)
	add("BlockCode", "BLOCK", a.BlockCode)
	add("PlaceCode", "PLACE", a.PlaceCode)
	add("CBSACode", "CBSA", a.CBSACode)
	add("CSACode", "CSA", a.CSACode)
	add("NECTACode", "NECTA", a.NECTACode)
	add("MetroFlag", "MEMI", a.MetroFlag)
	add("PrincipalCity", "PCICBSA", a.PrincipalCity)
	add("PrincipalNECTA", "PCINECTA", a.PrincipalNECTA)
	add("SchoolDistrictType", "SDTYP", a.SchoolDistrictType)
	add("LowGrade", "LOGRADE", a.LowGrade)
	add("HighGrade", "HIGRADE", a.HighGrade)
	add("VotingDistrict", "VTD", a.VotingDistrict)
	add("CongressionalSessn", "CDSESSN", a.CongressionalSessn)
	add("LegislativeType", "LDTYP", a.LegislativeType)
	add("LegislativeYear", "LSY", a.LegislativeYear)
	add("ZCTA5", "ZCTA5", a.ZCTA5)
	add("PUMACode", "PUMA", a.PUMACode)
	add("UrbanRural", "UR", a.UrbanRural)
	extKeys := make([]string, 0, len(a.Extensions))
	for key := range a.Extensions {
		extKeys = append(extKeys, key)
	}
	sort.Strings(extKeys)
	for _, key := range extKeys {
		add("Extensions."+key, key, "populated")
	}
	return fields
}
