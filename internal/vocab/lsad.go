package vocab

import "strings"

// LSADCategory indicates where an LSAD description attaches to an area's
// basename, or whether it stands alone.
type LSADCategory string

const (
	LSADPrefix      LSADCategory = "prefix"
	LSADSuffix      LSADCategory = "suffix"
	LSADBalance     LSADCategory = "balance"
	LSADUnspecified LSADCategory = "unspecified"
)

// lsadEntry pairs a legal/statistical area description with its placement
// category.
type lsadEntry struct {
	description string
	category    LSADCategory
}

// lsads maps Census LSAD codes to descriptions and categories. The table
// covers the codes the geocoding service emits for the layers in the
// catalog; unlisted codes decode to an empty description.
var lsads = map[string]lsadEntry{
	"00": {"", LSADUnspecified},
	"03": {"City and Borough", LSADSuffix},
	"04": {"Borough", LSADSuffix},
	"05": {"Census Area", LSADSuffix},
	"06": {"County", LSADSuffix},
	"07": {"District", LSADSuffix},
	"10": {"Island", LSADSuffix},
	"12": {"Municipality", LSADSuffix},
	"13": {"Municipio", LSADSuffix},
	"15": {"Parish", LSADSuffix},
	"20": {"barrio", LSADSuffix},
	"21": {"borough", LSADSuffix},
	"22": {"CCD", LSADSuffix},
	"23": {"census subarea", LSADSuffix},
	"24": {"census subdistrict", LSADSuffix},
	"25": {"city", LSADSuffix},
	"26": {"county", LSADSuffix},
	"27": {"district", LSADSuffix},
	"28": {"District", LSADPrefix},
	"29": {"precinct", LSADSuffix},
	"30": {"Precinct", LSADPrefix},
	"31": {"gore", LSADSuffix},
	"32": {"grant", LSADSuffix},
	"36": {"location", LSADSuffix},
	"37": {"municipality", LSADSuffix},
	"39": {"plantation", LSADSuffix},
	"41": {"barrio-pueblo", LSADSuffix},
	"42": {"purchase", LSADSuffix},
	"43": {"town", LSADSuffix},
	"44": {"township", LSADSuffix},
	"45": {"Township", LSADPrefix},
	"46": {"UT", LSADSuffix},
	"47": {"village", LSADSuffix},
	"49": {"charter township", LSADSuffix},
	"51": {"subbarrio", LSADSuffix},
	"53": {"city and borough", LSADSuffix},
	"55": {"comunidad", LSADSuffix},
	"57": {"CDP", LSADSuffix},
	"62": {"zona urbana", LSADSuffix},
	"68": {"Region", LSADSuffix},
	"69": {"Division", LSADSuffix},
	"70": {"UGA", LSADSuffix},
	"71": {"CMSA", LSADSuffix},
	"72": {"MSA", LSADSuffix},
	"73": {"Primary Metropolitan Statistical Area", LSADSuffix},
	"74": {"New England County Metropolitan Area", LSADSuffix},
	"75": {"Urbanized Area", LSADSuffix},
	"76": {"Urban Cluster", LSADSuffix},
	"77": {"Alaska Native Regional Corporation", LSADSuffix},
	"78": {"Hawaiian Home Land", LSADSuffix},
	"79": {"ANVSA", LSADSuffix},
	"80": {"TDSA", LSADSuffix},
	"81": {"Colony", LSADSuffix},
	"82": {"Community", LSADSuffix},
	"83": {"joint-use area", LSADSuffix},
	"84": {"Pueblo", LSADSuffix},
	"85": {"Rancheria", LSADSuffix},
	"86": {"Reservation", LSADSuffix},
	"87": {"Reserve", LSADSuffix},
	"88": {"OTSA", LSADSuffix},
	"89": {"Trust Land", LSADSuffix},
	"90": {"joint-use OTSA", LSADSuffix},
	"91": {"Ranch", LSADSuffix},
	"92": {"SDTSA", LSADSuffix},
	"93": {"Indian Village", LSADSuffix},
	"94": {"Village", LSADSuffix},
	"95": {"Indian Community", LSADSuffix},
	"96": {"Indian Reservation", LSADSuffix},
	"97": {"Indian Rancheria", LSADSuffix},
	"98": {"Indian Colony", LSADSuffix},
	"99": {"Pueblo de", LSADPrefix},
	"9C": {"Pueblo of", LSADPrefix},
	"9D": {"Ranch Reservation", LSADSuffix},
	"9E": {"Rancheria Reservation", LSADSuffix},
	"9F": {"Ranches", LSADSuffix},
	"B1": {"Balance of", LSADBalance},
	"B2": {"Balance", LSADBalance},
	"B3": {"Balance of", LSADBalance},
	"B4": {"Balance of", LSADBalance},
	"B5": {"town (balance)", LSADBalance},
	"B6": {"township (balance)", LSADBalance},
	"B7": {"charter township (balance)", LSADBalance},
	"B8": {"Balance of", LSADBalance},
	"BG": {"Block Group", LSADPrefix},
	"BK": {"Block", LSADPrefix},
	"C1": {"Congressional District", LSADSuffix},
	"C2": {"Congressional District (at Large)", LSADUnspecified},
	"C3": {"Resident Commissioner District (at Large)", LSADUnspecified},
	"C4": {"Delegate District (at Large)", LSADUnspecified},
	"C5": {"No Representative", LSADUnspecified},
	"CN": {"corporation", LSADSuffix},
	"CG": {"consolidated government", LSADSuffix},
	"CB": {"consolidated government (balance)", LSADBalance},
	"CT": {"Census Tract", LSADPrefix},
	"IB": {"Tribal Block Group", LSADPrefix},
	"IT": {"Tribal Census Tract", LSADPrefix},
	"L1": {"Ward", LSADPrefix},
	"L2": {"Senatorial District", LSADSuffix},
	"L3": {"Assembly District", LSADPrefix},
	"L4": {"General Assembly District", LSADPrefix},
	"L5": {"State Legislative District", LSADPrefix},
	"L6": {"State Legislative Subdistrict", LSADPrefix},
	"L7": {"District", LSADSuffix},
	"LL": {"State House District", LSADPrefix},
	"LU": {"State Senate District", LSADPrefix},
	"M0": {"CSA", LSADSuffix},
	"M1": {"Metro Area", LSADSuffix},
	"M2": {"Micro Area", LSADSuffix},
	"M3": {"Combined NECTA", LSADSuffix},
	"M4": {"Metropolitan NECTA", LSADSuffix},
	"M5": {"Micropolitan NECTA", LSADSuffix},
	"M6": {"NECTA Division", LSADSuffix},
	"M7": {"Metropolitan Division", LSADSuffix},
	"P1": {"SuperPUMA", LSADPrefix},
	"P5": {"PUMA", LSADPrefix},
	"T1": {"Area", LSADSuffix},
	"T2": {"Chapter", LSADSuffix},
	"T3": {"Segment", LSADSuffix},
	"TA": {"Administrative Area", LSADSuffix},
	"TB": {"Addition", LSADSuffix},
	"TC": {"County District", LSADSuffix},
	"TZ": {"TAZ", LSADPrefix},
	"TD": {"TAD", LSADPrefix},
	"UC": {"Urban Cluster", LSADSuffix},
	"UA": {"Urbanized Area", LSADSuffix},
	"V1": {"Voting District", LSADUnspecified},
	"V2": {"Voting District", LSADUnspecified},
	"Z3": {"ZCTA3", LSADSuffix},
	"Z5": {"ZCTA5", LSADSuffix},
}

// LSADDescription returns the legal/statistical area description for an LSAD
// code, or "" if the code is not recognized.
func LSADDescription(code string) string {
	return lsads[strings.ToUpper(strings.TrimSpace(code))].description
}

// LSADCategoryOf returns where the LSAD description attaches relative to the
// area's basename. Unknown codes report LSADUnspecified.
func LSADCategoryOf(code string) LSADCategory {
	entry, ok := lsads[strings.ToUpper(strings.TrimSpace(code))]
	if !ok || entry.category == "" {
		return LSADUnspecified
	}
	return entry.category
}
