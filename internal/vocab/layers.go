package vocab

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// Layer name wildcards understood by the geocoding service.
const (
	LayersAll     = "all"
	LayersDefault = "default"
)

// canonicalLayers lists the layer names the geocoding service accepts in the
// `layers` query parameter, exactly as the service spells them. A handful of
// entries carry the service's own misspellings ("Micopolitan ..."), which it
// both accepts and emits.
var canonicalLayers = []string{
	"2010 Census Public Use Microdata Areas",
	"Public Use Microdata Areas",
	"Census Regions",
	"Census Divisions",
	"States",
	"Counties",
	"County Subdivisions",
	"Tribal Subdivisions",
	"Metropolitan Divisions",
	"2010 Census ZIP Code Tabulation Areas",
	"2020 ZIP code Tabulation Areas",
	"Zip Code Tabulation Areas",
	"Unified School Districts",
	"Secondary School Districts",
	"Elementary School Districts",
	"Voting Districts",
	"State Legislative Districts - Upper",
	"State Legislative Districts - Lower",
	"2018 State Legislative Districts - Upper",
	"2018 State Legislative Districts - Lower",
	"2016 State Legislative Districts - Upper",
	"2016 State Legislative Districts - Lower",
	"2012 State Legislative Districts - Upper",
	"2012 State Legislative Districts - Lower",
	"2010 State Legislative Districts - Upper",
	"2010 State Legislative Districts - Lower",
	"116th Congressional Districts",
	"115th Congressional Districts",
	"113th Congressional Districts",
	"111th Congressional Districts",
	"Combined Statistical Areas",
	"Metropolitan Statistical Areas",
	"Micropolitan Statistical Areas",
	"Census Block Groups",
	"Tribal Census Block Groups",
	"Census Blocks",
	"2020 Census Blocks",
	"Census Tracts",
	"Tribal Census Tracts",
	"Census Designated Places",
	"Estates",
	"Subbarrios",
	"Consolidated Cities",
	"Incorporated Places",
	"Alaska Native Regional Corporations",
	"Federal American Indian Reservations",
	"Off-Reservation Trust Lands",
	"State American Indian Reservations",
	"Hawaiian Home Lands",
	"Alaska Native Village Statistical Areas",
	"Oklahoma Tribal Statistical Areas",
	"State Designated Tribal Statistical Areas",
	"Tribal Designated Statistical Areas",
	"American Indian Joint-Use Areas",
	"Combined New England City and Town Areas",
	"New England City and Town Area Divisions",
	"Metropolitan New England City and Town Areas",
	"Micopolitan New England City and Town Areas",
	"Urban Growth Areas",
	"Urbanized Areas",
	"2010 Census Urbanized Areas",
	"Urban Clusters",
	"2010 Census Urban Clusters",
	"Traffic Analysis Districts",
	"Traffic Analysis Zones",
}

// layerAliases maps normalized alias forms to canonical layer names. These
// cover abbreviations, historical names, and spellings that drifted across
// benchmark releases. Singular/plural variants are handled by normalization,
// not listed here.
var layerAliases = map[string]string{
	"puma":                          "Public Use Microdata Areas",
	"pumas":                         "Public Use Microdata Areas",
	"2010 pumas":                    "2010 Census Public Use Microdata Areas",
	"2010 census pumas":             "2010 Census Public Use Microdata Areas",
	"region":                        "Census Regions",
	"regions":                       "Census Regions",
	"division":                      "Census Divisions",
	"divisions":                     "Census Divisions",
	"state":                         "States",
	"county":                        "Counties",
	"county subdivision":            "County Subdivisions",
	"cousub":                        "County Subdivisions",
	"tribal subdivision":            "Tribal Subdivisions",
	"metro division":                "Metropolitan Divisions",
	"metro divisions":               "Metropolitan Divisions",
	"metdiv":                        "Metropolitan Divisions",
	"zcta":                          "Zip Code Tabulation Areas",
	"zcta5":                         "Zip Code Tabulation Areas",
	"zctas":                         "Zip Code Tabulation Areas",
	"zip code tabulation area":      "Zip Code Tabulation Areas",
	"zip codes":                     "Zip Code Tabulation Areas",
	"2010 zcta":                     "2010 Census ZIP Code Tabulation Areas",
	"2010 zctas":                    "2010 Census ZIP Code Tabulation Areas",
	"2020 zcta":                     "2020 ZIP code Tabulation Areas",
	"2020 zctas":                    "2020 ZIP code Tabulation Areas",
	"2020 zip code tabulation areas": "2020 ZIP code Tabulation Areas",
	"unified school district":       "Unified School Districts",
	"secondary school district":     "Secondary School Districts",
	"elementary school district":    "Elementary School Districts",
	"school districts":              "Unified School Districts",
	"voting district":               "Voting Districts",
	"vtd":                           "Voting Districts",
	"vtds":                          "Voting Districts",
	"sldu":                          "State Legislative Districts - Upper",
	"sldl":                          "State Legislative Districts - Lower",
	"state legislative districts upper": "State Legislative Districts - Upper",
	"state legislative districts lower": "State Legislative Districts - Lower",
	"upper legislative districts":       "State Legislative Districts - Upper",
	"lower legislative districts":       "State Legislative Districts - Lower",
	"congressional districts":           "116th Congressional Districts",
	"congressional district":            "116th Congressional Districts",
	"cd":                                "116th Congressional Districts",
	"cd116":                             "116th Congressional Districts",
	"cd115":                             "115th Congressional Districts",
	"cd113":                             "113th Congressional Districts",
	"cd111":                             "111th Congressional Districts",
	"csa":                               "Combined Statistical Areas",
	"csas":                              "Combined Statistical Areas",
	"msa":                               "Metropolitan Statistical Areas",
	"msas":                              "Metropolitan Statistical Areas",
	"metro areas":                       "Metropolitan Statistical Areas",
	"metropolitan areas":                "Metropolitan Statistical Areas",
	"micropolitan areas":                "Micropolitan Statistical Areas",
	"cbsa":                              "Metropolitan Statistical Areas",
	"block group":                       "Census Block Groups",
	"block groups":                      "Census Block Groups",
	"blkgrp":                            "Census Block Groups",
	"tribal block groups":               "Tribal Census Block Groups",
	"block":                             "Census Blocks",
	"blocks":                            "Census Blocks",
	"2020 blocks":                       "2020 Census Blocks",
	"2020 census block":                 "2020 Census Blocks",
	"tract":                             "Census Tracts",
	"tracts":                            "Census Tracts",
	"tribal tracts":                     "Tribal Census Tracts",
	"cdp":                               "Census Designated Places",
	"cdps":                              "Census Designated Places",
	"estate":                            "Estates",
	"subbarrio":                         "Subbarrios",
	"sub barrios":                       "Subbarrios",
	"consolidated city":                 "Consolidated Cities",
	"incorporated place":                "Incorporated Places",
	"places":                            "Incorporated Places",
	"anrc":                              "Alaska Native Regional Corporations",
	"anrcs":                             "Alaska Native Regional Corporations",
	"federal air":                       "Federal American Indian Reservations",
	"federal reservations":              "Federal American Indian Reservations",
	"off reservation trust lands":       "Off-Reservation Trust Lands",
	"trust lands":                       "Off-Reservation Trust Lands",
	"state air":                         "State American Indian Reservations",
	"state reservations":                "State American Indian Reservations",
	"hawaiian home land":                "Hawaiian Home Lands",
	"anvsa":                             "Alaska Native Village Statistical Areas",
	"anvsas":                            "Alaska Native Village Statistical Areas",
	"otsa":                              "Oklahoma Tribal Statistical Areas",
	"otsas":                             "Oklahoma Tribal Statistical Areas",
	"sdtsa":                             "State Designated Tribal Statistical Areas",
	"sdtsas":                            "State Designated Tribal Statistical Areas",
	"tdsa":                              "Tribal Designated Statistical Areas",
	"tdsas":                             "Tribal Designated Statistical Areas",
	"aijua":                             "American Indian Joint-Use Areas",
	"joint use areas":                   "American Indian Joint-Use Areas",
	"american indian joint use areas":   "American Indian Joint-Use Areas",
	"combined nectas":                   "Combined New England City and Town Areas",
	"cnecta":                            "Combined New England City and Town Areas",
	"necta divisions":                   "New England City and Town Area Divisions",
	"nectadiv":                          "New England City and Town Area Divisions",
	"metropolitan nectas":               "Metropolitan New England City and Town Areas",
	"metro nectas":                      "Metropolitan New England City and Town Areas",
	"necta":                             "Metropolitan New England City and Town Areas",
	"nectas":                            "Metropolitan New England City and Town Areas",
	"micropolitan nectas":               "Micopolitan New England City and Town Areas",
	"micro nectas":                      "Micopolitan New England City and Town Areas",
	"micropolitan new england city and town areas": "Micopolitan New England City and Town Areas",
	"uga":                  "Urban Growth Areas",
	"ugas":                 "Urban Growth Areas",
	"ua":                   "Urbanized Areas",
	"uas":                  "Urbanized Areas",
	"urban areas":          "Urbanized Areas",
	"2010 urbanized areas": "2010 Census Urbanized Areas",
	"uc":                   "Urban Clusters",
	"ucs":                  "Urban Clusters",
	"2010 urban clusters":  "2010 Census Urban Clusters",
	"tad":                  "Traffic Analysis Districts",
	"tads":                 "Traffic Analysis Districts",
	"taz":                  "Traffic Analysis Zones",
	"tazs":                 "Traffic Analysis Zones",
}

// normalizedCanonical maps normalized canonical names to their exact form.
var normalizedCanonical = buildNormalizedCanonical()

func buildNormalizedCanonical() map[string]string {
	m := make(map[string]string, len(canonicalLayers))
	for _, name := range canonicalLayers {
		m[normalizeLayer(name)] = name
	}
	return m
}

// normalizeLayer lowers case, strips punctuation variance, and collapses
// whitespace so that "Census-Tracts", "census  tracts", and "CENSUS TRACTS"
// all compare equal.
func normalizeLayer(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer("-", " ", "_", " ", "/", " ", ".", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// ResolveLayer resolves a single user-supplied layer name to the canonical
// name the service accepts. Matching is case-insensitive and tolerates
// singular forms, hyphen/underscore variance, and the alias table above.
func ResolveLayer(name string) (string, error) {
	key := normalizeLayer(name)
	if key == "" {
		return "", eris.Wrap(ErrUnrecognizedLayer, "empty layer name")
	}
	if key == LayersAll || key == LayersDefault {
		return key, nil
	}

	if canonical, ok := normalizedCanonical[key]; ok {
		return canonical, nil
	}
	if canonical, ok := layerAliases[key]; ok {
		return canonical, nil
	}
	// Singular input against a plural canonical name.
	if canonical, ok := normalizedCanonical[key+"s"]; ok {
		return canonical, nil
	}
	if canonical, ok := layerAliases[key+"s"]; ok {
		return canonical, nil
	}
	return "", eris.Wrapf(ErrUnrecognizedLayer, "%q", name)
}

// ResolveLayers resolves a comma-delimited layer specification into canonical
// layer names, deduplicated in input order. "all" or "default" anywhere in
// the list short-circuits to that wildcard. An empty spec resolves to "all".
func ResolveLayers(spec string) ([]string, error) {
	if strings.TrimSpace(spec) == "" {
		return []string{LayersAll}, nil
	}

	parts := strings.Split(spec, ",")
	seen := make(map[string]bool, len(parts))
	resolved := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		canonical, err := ResolveLayer(part)
		if err != nil {
			return nil, err
		}
		if canonical == LayersAll || canonical == LayersDefault {
			return []string{canonical}, nil
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		resolved = append(resolved, canonical)
	}
	if len(resolved) == 0 {
		return []string{LayersAll}, nil
	}
	return resolved, nil
}

// Layers returns all canonical layer names in sorted order.
func Layers() []string {
	names := make([]string, len(canonicalLayers))
	copy(names, canonicalLayers)
	sort.Strings(names)
	return names
}

// LayerAliases returns the alias table (normalized alias to canonical name)
// for vocabulary listings. The returned map is a copy.
func LayerAliases() map[string]string {
	m := make(map[string]string, len(layerAliases))
	for k, v := range layerAliases {
		m[k] = v
	}
	return m
}
