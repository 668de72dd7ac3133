package vocab

import "strings"

// funcstats maps Census FUNCSTAT codes to their functional status
// descriptions. Codes are single letters; the service emits them upper-case.
var funcstats = map[string]string{
	"A": "Active government providing primary general-purpose functions",
	"B": "Active government that is partially consolidated with another government but with separate officials providing primary general-purpose functions",
	"C": "Active government consolidated with another government with a single set of officials",
	"E": "Active government providing special-purpose functions",
	"F": "Fictitious entity created to fill the Census Bureau's geographic hierarchy",
	"G": "Active government that is subordinate to another unit of government",
	"I": "Inactive governmental unit that has the power to provide primary special-purpose functions",
	"L": "Inactive, nonfunctioning legal real property entity with potential quasi-legal administrative functions",
	"M": "Active legal real property entity with quasi-legal functions",
	"N": "Nonfunctioning legal entity",
	"S": "Statistical entity",
	"T": "Active state-recognized entity",
}

// FunctionalStatus returns the description for a FUNCSTAT code, or "" if the
// code is not recognized. Matching is case-insensitive.
func FunctionalStatus(code string) string {
	return funcstats[strings.ToUpper(strings.TrimSpace(code))]
}
