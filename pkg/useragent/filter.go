package useragent

// DefaultCategory is the catalog listing grouped by software name.
const DefaultCategory = "software_name"

// Filter narrows a random pick. Category, Name and OrderBy select the
// catalog query; the remaining fields are exact-match predicates applied
// after fetching and never affect caching. Empty fields are unset.
type Filter struct {
	Category string
	Name     string
	OrderBy  string

	SoftwareVersion string
	OperatingSystem string
	HardwareType    string
}

// HasPredicates reports whether any record predicate is set.
func (f Filter) HasPredicates() bool {
	return f.SoftwareVersion != "" || f.OperatingSystem != "" || f.HardwareType != ""
}

// Match reports whether r satisfies every set predicate.
func (f Filter) Match(r Record) bool {
	if f.SoftwareVersion != "" && r.SoftwareVersion != f.SoftwareVersion {
		return false
	}
	if f.OperatingSystem != "" && r.OperatingSystem != f.OperatingSystem {
		return false
	}
	if f.HardwareType != "" && r.HardwareType != f.HardwareType {
		return false
	}
	return true
}

// Apply returns the records matching f. Without predicates the input is
// returned unchanged.
func (f Filter) Apply(records []Record) []Record {
	if !f.HasPredicates() {
		return records
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// predicates keeps only the record predicates of f.
func (f Filter) predicates() Filter {
	return Filter{
		SoftwareVersion: f.SoftwareVersion,
		OperatingSystem: f.OperatingSystem,
		HardwareType:    f.HardwareType,
	}
}
