// Package catalog defines the coaching offerings shown on the site and
// referenced by bookings.
package catalog

import (
	"encoding/json"
	"strconv"
)

// PackageID is the stable identifier of an offering. The backing data stores
// ids as either JSON numbers or strings; both normalize to the string form so
// lookups compare consistently across locales.
type PackageID string

func (id *PackageID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*id = PackageID(v)
	case float64:
		*id = PackageID(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		*id = PackageID(string(data))
	}
	return nil
}

func (id PackageID) String() string {
	return string(id)
}

// Package is one purchasable coaching offering. Identity is stable across
// locales; only the display fields vary by language.
type Package struct {
	ID          PackageID `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
}

// FindByID locates a package by string-compared identifier, so "3" matches a
// catalog entry stored as the number 3.
func FindByID(packages []Package, id string) (Package, bool) {
	for _, p := range packages {
		if p.ID.String() == id {
			return p, true
		}
	}
	return Package{}, false
}
