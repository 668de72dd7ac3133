package census

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/census-geocoder/internal/vocab"
)

// Area is a single geographic area from a geographies response. All layers
// share the common surface (GEOID, name, status, centroid, extents); fields
// that only some layers carry stay zero elsewhere. Attributes the catalog
// does not model are preserved in Extensions and round-trip through
// serialization.
type Area struct {
	Layer string   `json:"-"` // canonical layer name of the containing group
	Type  AreaType `json:"-"`

	GeoID    string `json:"GEOID,omitempty"`
	OID      string `json:"OID,omitempty"`
	ObjectID int64  `json:"OBJECTID,omitempty"`
	Name     string `json:"NAME,omitempty"`
	BaseName string `json:"BASENAME,omitempty"`
	FuncStat string `json:"FUNCSTAT,omitempty"`
	LSAD     string `json:"LSAD,omitempty"`
	MTFCC    string `json:"MTFCC,omitempty"`

	CentLat  string `json:"CENTLAT,omitempty"`
	CentLon  string `json:"CENTLON,omitempty"`
	IntPtLat string `json:"INTPTLAT,omitempty"`
	IntPtLon string `json:"INTPTLON,omitempty"`

	LandArea  int64 `json:"AREALAND,omitempty"`
	WaterArea int64 `json:"AREAWATER,omitempty"`
	Pop100    int64 `json:"POP100,omitempty"`
	HU100     int64 `json:"HU100,omitempty"`

	// FIPS hierarchy components.
	StateFIPS  string `json:"STATE,omitempty"`
	CountyFIPS string `json:"COUNTY,omitempty"`
	TractCode  string `json:"TRACT,omitempty"`
	BlockGroup string `json:"BLKGRP,omitempty"`
	BlockCode  string `json:"BLOCK,omitempty"`
	PlaceCode  string `json:"PLACE,omitempty"`

	// Statistical-area codes.
	CBSACode      string `json:"CBSA,omitempty"`
	CSACode       string `json:"CSA,omitempty"`
	NECTACode     string `json:"NECTA,omitempty"`
	MetroFlag     string `json:"MEMI,omitempty"` // 1 metropolitan, 2 micropolitan
	PrincipalCity string `json:"PCICBSA,omitempty"`
	PrincipalNECTA string `json:"PCINECTA,omitempty"`

	// School district attributes.
	SchoolDistrictType string `json:"SDTYP,omitempty"`
	LowGrade           string `json:"LOGRADE,omitempty"`
	HighGrade          string `json:"HIGRADE,omitempty"`

	// Electoral and legislative attributes.
	VotingDistrict     string `json:"VTD,omitempty"`
	CongressionalSessn string `json:"CDSESSN,omitempty"`
	LegislativeType    string `json:"LDTYP,omitempty"`
	LegislativeYear    string `json:"LSY,omitempty"`

	ZCTA5      string `json:"ZCTA5,omitempty"`
	PUMACode   string `json:"PUMA,omitempty"`
	UrbanRural string `json:"UR,omitempty"`

	// Attributes outside the modeled surface, keyed by wire name.
	Extensions map[string]any `json:"-"`
}

// FunctionalStatus returns the decoded FUNCSTAT description.
func (a *Area) FunctionalStatus() string {
	return vocab.FunctionalStatus(a.FuncStat)
}

// LSADDescription returns the decoded legal/statistical area description.
func (a *Area) LSADDescription() string {
	return vocab.LSADDescription(a.LSAD)
}

// LSADCategory reports where the LSAD description attaches to the basename.
func (a *Area) LSADCategory() vocab.LSADCategory {
	return vocab.LSADCategoryOf(a.LSAD)
}

// Centroid returns the area's centroid as an XY point (longitude, latitude),
// or nil when the service did not supply one.
func (a *Area) Centroid() *geom.Point {
	return pointFrom(a.CentLon, a.CentLat)
}

// InternalPoint returns the area's internal point as an XY point (longitude,
// latitude), or nil when the service did not supply one.
func (a *Area) InternalPoint() *geom.Point {
	return pointFrom(a.IntPtLon, a.IntPtLat)
}

func pointFrom(lon, lat string) *geom.Point {
	x, errX := parseCoordinate(lon)
	y, errY := parseCoordinate(lat)
	if errX != nil || errY != nil {
		return nil
	}
	return geom.NewPointFlat(geom.XY, []float64{x, y})
}

// parseCoordinate parses the service's signed fixed-point coordinate strings
// ("+38.8460908", "-076.9941119"), tolerating the explicit plus sign and
// leading zeros.
func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, eris.New("census: empty coordinate")
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
	if err != nil {
		return 0, eris.Wrapf(err, "census: parse coordinate %q", s)
	}
	return v, nil
}

// formatLatitude renders a latitude in the service's signed fixed-point form
// ("+38.8460908").
func formatLatitude(v float64) string {
	return fmt.Sprintf("%+.7f", v)
}

// formatLongitude renders a longitude in the service's signed zero-padded
// fixed-point form ("-076.9941119").
func formatLongitude(v float64) string {
	return fmt.Sprintf("%+012.7f", v)
}

// areaJSON mirrors Area for wire decoding.
type areaJSON Area

// knownAreaFields lists the wire keys the Area struct models; everything else
// lands in Extensions.
var knownAreaFields = map[string]bool{
	"GEOID": true, "OID": true, "OBJECTID": true, "NAME": true,
	"BASENAME": true, "FUNCSTAT": true, "LSAD": true, "MTFCC": true,
	"CENTLAT": true, "CENTLON": true, "INTPTLAT": true, "INTPTLON": true,
	"AREALAND": true, "AREAWATER": true, "POP100": true, "HU100": true,
	"STATE": true, "COUNTY": true, "TRACT": true, "BLKGRP": true,
	"BLOCK": true, "PLACE": true, "CBSA": true, "CSA": true, "NECTA": true,
	"MEMI": true, "PCICBSA": true, "PCINECTA": true, "SDTYP": true,
	"LOGRADE": true, "HIGRADE": true, "VTD": true, "CDSESSN": true,
	"LDTYP": true, "LSY": true, "ZCTA5": true, "PUMA": true, "UR": true,
}

// UnmarshalJSON decodes an area, preserving unmodeled attributes in
// Extensions.
func (a *Area) UnmarshalJSON(data []byte) error {
	var aux areaJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return eris.Wrap(err, "census: decode area")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return eris.Wrap(err, "census: decode area attributes")
	}
	for key, msg := range raw {
		if knownAreaFields[key] {
			continue
		}
		var v any
		if err := json.Unmarshal(msg, &v); err != nil {
			continue
		}
		if aux.Extensions == nil {
			aux.Extensions = make(map[string]any)
		}
		aux.Extensions[key] = v
	}

	*a = Area(aux)
	return nil
}

// MarshalJSON encodes an area back into the service's wire structure,
// including Extensions.
func (a *Area) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(areaJSON(*a))
	if err != nil {
		return nil, eris.Wrap(err, "census: encode area")
	}
	if len(a.Extensions) == 0 {
		return data, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, eris.Wrap(err, "census: merge area extensions")
	}
	for key, v := range a.Extensions {
		merged[key] = v
	}
	return json.Marshal(merged)
}

// Collection groups areas by the canonical layer name the service returned
// them under, preserving response order.
type Collection struct {
	layers []string
	groups map[string][]Area
}

// UnmarshalJSON decodes the service's geographies object. Layer names the
// catalog does not recognize still parse; their areas carry TypeUnknown.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var raw map[string][]Area
	if err := json.Unmarshal(data, &raw); err != nil {
		return eris.Wrap(err, "census: decode geographies")
	}

	c.groups = make(map[string][]Area, len(raw))
	c.layers = make([]string, 0, len(raw))
	for layer, areas := range raw {
		t := TypeForLayer(layer)
		for i := range areas {
			areas[i].Layer = layer
			areas[i].Type = t
		}
		c.groups[layer] = areas
		c.layers = append(c.layers, layer)
	}
	sort.Strings(c.layers)
	return nil
}

// MarshalJSON encodes the collection back into the service's layer-keyed
// structure.
func (c Collection) MarshalJSON() ([]byte, error) {
	out := make(map[string][]Area, len(c.groups))
	for layer, areas := range c.groups {
		out[layer] = areas
	}
	return json.Marshal(out)
}

// Layers returns the layer names present, sorted.
func (c *Collection) Layers() []string {
	out := make([]string, len(c.layers))
	copy(out, c.layers)
	return out
}

// ByLayer returns the areas returned under the given layer name. The name is
// resolved through the vocabulary, so aliases work.
func (c *Collection) ByLayer(layer string) []Area {
	if areas, ok := c.groups[layer]; ok {
		return areas
	}
	canonical, err := vocab.ResolveLayer(layer)
	if err != nil {
		return nil
	}
	return c.groups[canonical]
}

// ByType returns all areas of the given catalog type across layers.
func (c *Collection) ByType(t AreaType) []Area {
	var out []Area
	for _, layer := range c.layers {
		for _, area := range c.groups[layer] {
			if area.Type == t {
				out = append(out, area)
			}
		}
	}
	return out
}

// Len returns the total number of areas across all layers.
func (c *Collection) Len() int {
	n := 0
	for _, areas := range c.groups {
		n += len(areas)
	}
	return n
}

// Convenience accessors for the most commonly requested layers.

func (c *Collection) States() []Area       { return c.ByType(TypeState) }
func (c *Collection) Counties() []Area     { return c.ByType(TypeCounty) }
func (c *Collection) Tracts() []Area       { return c.ByType(TypeCensusTract) }
func (c *Collection) BlockGroups() []Area  { return c.ByType(TypeBlockGroup) }
func (c *Collection) Blocks() []Area {
	out := c.ByType(TypeCensusBlock)
	return append(out, c.ByType(TypeCensusBlock2020)...)
}
func (c *Collection) MetropolitanAreas() []Area {
	return c.ByType(TypeMetropolitanStatisticalArea)
}
func (c *Collection) ZCTAs() []Area {
	out := c.ByType(TypeZCTA)
	out = append(out, c.ByType(TypeZCTA2010)...)
	return append(out, c.ByType(TypeZCTA2020)...)
}
