package census

// AreaType identifies the kind of geographic area a layer group contains.
type AreaType string

// Area type catalog. One entry per layer the service can return; historical
// variants of the same geography (e.g. the per-session congressional district
// layers) share a type.
const (
	TypeUnknown                      AreaType = ""
	TypeRegion                       AreaType = "region"
	TypeDivision                     AreaType = "division"
	TypeState                        AreaType = "state"
	TypeCounty                       AreaType = "county"
	TypeCountySubdivision            AreaType = "county_subdivision"
	TypeTribalSubdivision            AreaType = "tribal_subdivision"
	TypeMetropolitanDivision         AreaType = "metropolitan_division"
	TypeZCTA                         AreaType = "zcta"
	TypeZCTA2010                     AreaType = "zcta_2010"
	TypeZCTA2020                     AreaType = "zcta_2020"
	TypeUnifiedSchoolDistrict        AreaType = "unified_school_district"
	TypeSecondarySchoolDistrict      AreaType = "secondary_school_district"
	TypeElementarySchoolDistrict     AreaType = "elementary_school_district"
	TypeVotingDistrict               AreaType = "voting_district"
	TypeStateLegislativeUpper        AreaType = "state_legislative_district_upper"
	TypeStateLegislativeLower        AreaType = "state_legislative_district_lower"
	TypeCongressionalDistrict        AreaType = "congressional_district"
	TypeCombinedStatisticalArea      AreaType = "combined_statistical_area"
	TypeMetropolitanStatisticalArea  AreaType = "metropolitan_statistical_area"
	TypeMicropolitanStatisticalArea  AreaType = "micropolitan_statistical_area"
	TypeBlockGroup                   AreaType = "block_group"
	TypeTribalBlockGroup             AreaType = "tribal_block_group"
	TypeCensusBlock                  AreaType = "census_block"
	TypeCensusBlock2020              AreaType = "census_block_2020"
	TypeCensusTract                  AreaType = "census_tract"
	TypeTribalCensusTract            AreaType = "tribal_census_tract"
	TypeCensusDesignatedPlace        AreaType = "census_designated_place"
	TypeEstate                       AreaType = "estate"
	TypeSubbarrio                    AreaType = "subbarrio"
	TypeConsolidatedCity             AreaType = "consolidated_city"
	TypeIncorporatedPlace            AreaType = "incorporated_place"
	TypeANRC                         AreaType = "alaska_native_regional_corporation"
	TypeFederalReservation           AreaType = "federal_american_indian_reservation"
	TypeOffReservationTrustLand      AreaType = "off_reservation_trust_land"
	TypeStateReservation             AreaType = "state_american_indian_reservation"
	TypeHawaiianHomeLand             AreaType = "hawaiian_home_land"
	TypeANVSA                        AreaType = "alaska_native_village_statistical_area"
	TypeOTSA                         AreaType = "oklahoma_tribal_statistical_area"
	TypeSDTSA                        AreaType = "state_designated_tribal_statistical_area"
	TypeTDSA                         AreaType = "tribal_designated_statistical_area"
	TypeAIJUA                        AreaType = "american_indian_joint_use_area"
	TypeCombinedNECTA                AreaType = "combined_necta"
	TypeNECTADivision                AreaType = "necta_division"
	TypeMetropolitanNECTA            AreaType = "metropolitan_necta"
	TypeMicropolitanNECTA            AreaType = "micropolitan_necta"
	TypePUMA                         AreaType = "puma"
	TypePUMA2010                     AreaType = "puma_2010"
	TypeUrbanGrowthArea              AreaType = "urban_growth_area"
	TypeUrbanizedArea                AreaType = "urbanized_area"
	TypeUrbanizedArea2010            AreaType = "urbanized_area_2010"
	TypeUrbanCluster                 AreaType = "urban_cluster"
	TypeUrbanCluster2010             AreaType = "urban_cluster_2010"
	TypeTrafficAnalysisDistrict      AreaType = "traffic_analysis_district"
	TypeTrafficAnalysisZone          AreaType = "traffic_analysis_zone"
)

// typeLabels maps area types to human-readable geography type labels.
var typeLabels = map[AreaType]string{
	TypeRegion:                      "Census Region",
	TypeDivision:                    "Census Division",
	TypeState:                       "State",
	TypeCounty:                      "County",
	TypeCountySubdivision:           "County Subdivision",
	TypeTribalSubdivision:           "Tribal Subdivision",
	TypeMetropolitanDivision:        "Metropolitan Division",
	TypeZCTA:                        "Zip Code Tabulation Area",
	TypeZCTA2010:                    "2010 Census ZIP Code Tabulation Area",
	TypeZCTA2020:                    "2020 ZIP Code Tabulation Area",
	TypeUnifiedSchoolDistrict:       "Unified School District",
	TypeSecondarySchoolDistrict:     "Secondary School District",
	TypeElementarySchoolDistrict:    "Elementary School District",
	TypeVotingDistrict:              "Voting District",
	TypeStateLegislativeUpper:       "State Legislative District - Upper",
	TypeStateLegislativeLower:       "State Legislative District - Lower",
	TypeCongressionalDistrict:       "Congressional District",
	TypeCombinedStatisticalArea:     "Combined Statistical Area",
	TypeMetropolitanStatisticalArea: "Metropolitan Statistical Area",
	TypeMicropolitanStatisticalArea: "Micropolitan Statistical Area",
	TypeBlockGroup:                  "Census Block Group",
	TypeTribalBlockGroup:            "Tribal Census Block Group",
	TypeCensusBlock:                 "Census Block",
	TypeCensusBlock2020:             "2020 Census Block",
	TypeCensusTract:                 "Census Tract",
	TypeTribalCensusTract:           "Tribal Census Tract",
	TypeCensusDesignatedPlace:       "Census Designated Place",
	TypeEstate:                      "Estate",
	TypeSubbarrio:                   "Subbarrio",
	TypeConsolidatedCity:            "Consolidated City",
	TypeIncorporatedPlace:           "Incorporated Place",
	TypeANRC:                        "Alaska Native Regional Corporation",
	TypeFederalReservation:          "Federal American Indian Reservation",
	TypeOffReservationTrustLand:     "Off-Reservation Trust Land",
	TypeStateReservation:            "State American Indian Reservation",
	TypeHawaiianHomeLand:            "Hawaiian Home Land",
	TypeANVSA:                       "Alaska Native Village Statistical Area",
	TypeOTSA:                        "Oklahoma Tribal Statistical Area",
	TypeSDTSA:                       "State Designated Tribal Statistical Area",
	TypeTDSA:                        "Tribal Designated Statistical Area",
	TypeAIJUA:                       "American Indian Joint-Use Area",
	TypeCombinedNECTA:               "Combined New England City and Town Area",
	TypeNECTADivision:               "New England City and Town Area Division",
	TypeMetropolitanNECTA:           "Metropolitan New England City and Town Area",
	TypeMicropolitanNECTA:           "Micropolitan New England City and Town Area",
	TypePUMA:                        "Public Use Microdata Area",
	TypePUMA2010:                    "2010 Census Public Use Microdata Area",
	TypeUrbanGrowthArea:             "Urban Growth Area",
	TypeUrbanizedArea:               "Urbanized Area",
	TypeUrbanizedArea2010:           "2010 Census Urbanized Area",
	TypeUrbanCluster:                "Urban Cluster",
	TypeUrbanCluster2010:            "2010 Census Urban Cluster",
	TypeTrafficAnalysisDistrict:     "Traffic Analysis District",
	TypeTrafficAnalysisZone:         "Traffic Analysis Zone",
}

// Label returns the human-readable geography type label, or "Geographic Area"
// for types the catalog does not model.
func (t AreaType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return "Geographic Area"
}

// layerTypes maps the layer names the service emits as geography group keys
// (including misspelled historical variants it actually returns) to catalog
// types. Lookup is by exact service spelling.
var layerTypes = map[string]AreaType{
	"Census Regions":                               TypeRegion,
	"Census Divisions":                             TypeDivision,
	"States":                                       TypeState,
	"Counties":                                     TypeCounty,
	"County Subdivisions":                          TypeCountySubdivision,
	"Tribal Subdivisions":                          TypeTribalSubdivision,
	"Metropolitan Divisions":                       TypeMetropolitanDivision,
	"Zip Code Tabulation Areas":                    TypeZCTA,
	"2010 Census ZIP Code Tabulation Areas":        TypeZCTA2010,
	"2020 ZIP code Tabulation Areas":               TypeZCTA2020,
	"Unified School Districts":                     TypeUnifiedSchoolDistrict,
	"Secondary School Districts":                   TypeSecondarySchoolDistrict,
	"Elementary School Districts":                  TypeElementarySchoolDistrict,
	"Voting Districts":                             TypeVotingDistrict,
	"State Legislative Districts - Upper":          TypeStateLegislativeUpper,
	"State Legislative Districts - Lower":          TypeStateLegislativeLower,
	"2018 State Legislative Districts - Upper":     TypeStateLegislativeUpper,
	"2018 State Legislative Districts - Lower":     TypeStateLegislativeLower,
	"2016 State Legislative Districts - Upper":     TypeStateLegislativeUpper,
	"2016 State Legislative Districts - Lower":     TypeStateLegislativeLower,
	"2012 State Legislative Districts - Upper":     TypeStateLegislativeUpper,
	"2012 State Legislative Districts - Lower":     TypeStateLegislativeLower,
	"2010 State Legislative Districts - Upper":     TypeStateLegislativeUpper,
	"2010 State Legislative Districts - Lower":     TypeStateLegislativeLower,
	"116th Congressional Districts":                TypeCongressionalDistrict,
	"115th Congressional Districts":                TypeCongressionalDistrict,
	"113th Congressional Districts":                TypeCongressionalDistrict,
	"111th Congressional Districts":                TypeCongressionalDistrict,
	"Combined Statistical Areas":                   TypeCombinedStatisticalArea,
	"Metropolitan Statistical Areas":               TypeMetropolitanStatisticalArea,
	"Micropolitan Statistical Areas":               TypeMicropolitanStatisticalArea,
	"Census Block Groups":                          TypeBlockGroup,
	"Tribal Census Block Groups":                   TypeTribalBlockGroup,
	"Census Blocks":                                TypeCensusBlock,
	"2020 Census Blocks":                           TypeCensusBlock2020,
	"Census Tracts":                                TypeCensusTract,
	"Tribal Census Tracts":                         TypeTribalCensusTract,
	"Census Designated Places":                     TypeCensusDesignatedPlace,
	"Estates":                                      TypeEstate,
	"Subbarrios":                                   TypeSubbarrio,
	"Consolidated Cities":                          TypeConsolidatedCity,
	"Incorporated Places":                          TypeIncorporatedPlace,
	"Alaska Native Regional Corporations":          TypeANRC,
	"Federal American Indian Reservations":         TypeFederalReservation,
	"Off-Reservation Trust Lands":                  TypeOffReservationTrustLand,
	"State American Indian Reservations":           TypeStateReservation,
	"Hawaiian Home Lands":                          TypeHawaiianHomeLand,
	"Alaska Native Village Statistical Areas":      TypeANVSA,
	"Oklahoma Tribal Statistical Areas":            TypeOTSA,
	"State Designated Tribal Statistical Areas":    TypeSDTSA,
	"Tribal Designated Statistical Areas":          TypeTDSA,
	"American Indian Joint-Use Areas":              TypeAIJUA,
	"Combined New England City and Town Areas":     TypeCombinedNECTA,
	"New England City and Town Area Divisions":     TypeNECTADivision,
	"Metropolitan New England City and Town Areas": TypeMetropolitanNECTA,
	"Micopolitan New England City and Town Areas":  TypeMicropolitanNECTA,
	"Public Use Microdata Areas":                   TypePUMA,
	"2010 Census Public Use Microdata Areas":       TypePUMA2010,
	"Urban Growth Areas":                           TypeUrbanGrowthArea,
	"Urbanized Areas":                              TypeUrbanizedArea,
	"2010 Census Urbanized Areas":                  TypeUrbanizedArea2010,
	"Urban Clusters":                               TypeUrbanCluster,
	"2010 Census Urban Clusters":                   TypeUrbanCluster2010,
	"Traffic Analysis Districts":                   TypeTrafficAnalysisDistrict,
	"Traffic Analysis Zones":                       TypeTrafficAnalysisZone,
}

// TypeForLayer returns the catalog type for a layer name as the service
// spells it. Unknown layers report TypeUnknown; their areas still parse
// generically.
func TypeForLayer(layer string) AreaType {
	return layerTypes[layer]
}
