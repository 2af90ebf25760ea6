package domain

import (
	"regexp"
	"strings"
)

var (
	nonDigitRun = regexp.MustCompile(`\D+`)
	digitRun    = regexp.MustCompile(`\d+`)
)

type Address struct {
	Address1     string
	Address2     string
	City         string
	State        string
	Country      string
	Zip          string
	Neighborhood string
}

// IsZero reports whether no field of the address is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// SplitStreet splits Address1 into a street name (first run of non-digits,
// trimmed) and a street number (first run of digits). Either part is empty
// when Address1 has no such run.
func (a Address) SplitStreet() (street, number string) {
	street = strings.TrimSpace(nonDigitRun.FindString(a.Address1))
	number = digitRun.FindString(a.Address1)
	return street, number
}
