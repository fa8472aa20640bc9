package resp

// Unit is a unit abbreviation: RESP files name units directly while SEED
// groups refer to them by lookup code.
type Unit struct {
	Code        string
	Name        string
	Description string
}

// DefaultUnits covers the units rdseed writes into RESP responses.
var DefaultUnits = []Unit{
	{Code: "4", Name: "M/S", Description: "velocity in meters per second"},
	{Code: "5", Name: "V", Description: "emf in volts"},
	{Code: "7", Name: "COUNTS", Description: "digital counts"},
}

// Abbreviations maps a raw value to its lookup code.
type Abbreviations map[string]string

// NewAbbreviations builds the lookup table for units.
func NewAbbreviations(units []Unit) Abbreviations {
	a := make(Abbreviations, len(units))
	for _, u := range units {
		a[u.Name] = u.Code
	}
	return a
}

// Lookup returns the substitute for an exact match of value.
func (a Abbreviations) Lookup(value string) (string, bool) {
	code, ok := a[value]
	return code, ok
}
