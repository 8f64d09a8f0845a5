package schema

import (
	"regexp"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// LEIPattern is the shape of a Legal Entity Identifier: 18 alphanumeric
// characters followed by 2 check digits. The ISO 17442 checksum itself
// is not verified, matching what regulators accept in practice.
const LEIPattern = `^[0-9A-Z]{18}[0-9]{2}$`

var (
	leiRegexp      = regexp.MustCompile(LEIPattern)
	countryRegexp  = regexp.MustCompile(`^[A-Z]{2}$`)
	currencyRegexp = regexp.MustCompile(`^[A-Z]{3}$`)
)

// IsLEI reports whether v has the 20-character LEI shape.
func IsLEI(v string) bool {
	return leiRegexp.MatchString(v)
}

// IsCountryCode reports whether v is an assigned ISO 3166-1 alpha-2
// country code. User-assigned ranges and the unknown-region code "ZZ"
// are rejected.
func IsCountryCode(v string) bool {
	if !countryRegexp.MatchString(v) {
		return false
	}
	r, err := language.ParseRegion(v)
	if err != nil {
		return false
	}
	return r.IsCountry() && !r.IsPrivateUse()
}

// IsCurrencyCode reports whether v is a recognized ISO 4217 currency code.
func IsCurrencyCode(v string) bool {
	if !currencyRegexp.MatchString(v) {
		return false
	}
	_, err := currency.ParseISO(v)
	return err == nil
}
