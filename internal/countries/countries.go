// Package countries translates country names to ISO3 codes and
// restricts a table to a set of target countries.
package countries

import (
	"strings"
	"time"
	"unicode"

	"github.com/ilcovid/oecdrt/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// OECDMembers contains the comparison countries of the original
// analysis: the OECD members minus Israel and the 2018+ accessions.
var OECDMembers = []string{
	"Australia",
	"Austria",
	"Belgium",
	"Canada",
	"Chile",
	"Czechia",
	"Denmark",
	"Estonia",
	"Finland",
	"France",
	"Germany",
	"Greece",
	"Hungary",
	"Iceland",
	"Ireland",
	"Italy",
	"Japan",
	"South Korea",
	"Latvia",
	"Luxembourg",
	"Mexico",
	"Netherlands",
	"New Zealand",
	"Norway",
	"Poland",
	"Portugal",
	"Slovakia",
	"Slovenia",
	"Spain",
	"Sweden",
	"Switzerland",
	"Turkey",
	"United Kingdom",
	"United States",
}

// entry is an entry of the ISO3 table.
type entry struct {
	code  string
	names []string
}

// index maps normalized names to ISO3 codes.
var index = newIndex(iso3)

// names maps ISO3 codes to the short English name.
var names = newNames(iso3)

func newIndex(entries []entry) map[string]string {
	out := make(map[string]string)
	for _, e := range entries {
		out[strings.ToLower(e.code)] = e.code
		for _, name := range e.names {
			out[Normalize(name)] = e.code
		}
	}
	return out
}

func newNames(entries []entry) map[string]string {
	out := make(map[string]string)
	for _, e := range entries {
		out[e.code] = e.names[0]
	}
	return out
}

// Normalize returns the canonical form of a country name used for the
// lookup: diacritics removed, case folded, punctuation collapsed into
// single spaces and a leading article dropped.
func Normalize(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}
	folded := cases.Fold().String(stripped)
	folded = strings.ReplaceAll(folded, "&", " and ")
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(fields) > 1 && fields[0] == "the" {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// Lookup translates a free-text country name, or an ISO3 code, to
// its ISO3 code. The boolean is false when the name is unknown.
func Lookup(name string) (string, bool) {
	code, found := index[Normalize(name)]
	return code, found
}

// Name returns the short English name of an ISO3 code.
func Name(code string) (string, bool) {
	name, found := names[code]
	return name, found
}

// Codes translates the given names to their ISO3 codes, dropping the
// names we cannot translate. The result maps codes to names.
func Codes(logger model.Logger, targets []string) map[string]string {
	out := make(map[string]string, len(targets))
	for _, name := range targets {
		code, found := Lookup(name)
		if !found {
			logger.Debugf("countries: cannot translate target %q", name)
			continue
		}
		out[code] = name
	}
	return out
}

// Filter returns a new table containing only the observations of the
// countries whose code is the code of one of the targets. Names that we
// cannot translate are not in scope and are dropped without error.
func Filter(logger model.Logger, table *model.Table, targets []string) *model.Table {
	wanted := Codes(logger, targets)
	keep := make(map[string]bool)
	out := &model.Table{
		Dates: append([]time.Time{}, table.Dates...),
	}
	for _, name := range table.Countries {
		code, found := Lookup(name)
		if !found {
			logger.Debugf("countries: dropping %q: no ISO3 code", name)
			continue
		}
		if _, ok := wanted[code]; !ok {
			continue
		}
		keep[name] = true
		out.Countries = append(out.Countries, name)
	}
	for _, obs := range table.Observations {
		if keep[obs.Country] {
			out.Observations = append(out.Observations, obs)
		}
	}
	return out
}

// Find returns the name used in the table for the given ISO3 code.
func Find(table *model.Table, code string) (string, bool) {
	for _, name := range table.Countries {
		if got, found := Lookup(name); found && got == code {
			return name, true
		}
	}
	return "", false
}

// Series extracts the series of the country with the given ISO3 code
// from the given date onward. The boolean is false when the table does
// not contain the country.
func Series(table *model.Table, code string, from time.Time) (*model.IncidenceSeries, bool) {
	name, found := Find(table, code)
	if !found {
		return nil, false
	}
	series, found := table.Series(name)
	if !found {
		return nil, false
	}
	series = series.From(from)
	series.Code = code
	return series, true
}
