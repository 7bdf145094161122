package core

import "strings"

// UnknownName is the display fallback for records with no usable name.
const UnknownName = "N/A"

// NameKind discriminates the shape of a record's raw name field.
type NameKind int

const (
	// NameAbsent means the record carries no name field at all.
	NameAbsent NameKind = iota
	// NameSingle means the field was a single string.
	NameSingle
	// NameMultiple means the field was a list of name variants.
	NameMultiple
)

// NameField is the raw name data of a product record. Catalog exports are
// inconsistent: the field may be a single string, a list of variants, or
// missing entirely. The variant is resolved once at the decoding boundary so
// downstream code only ever deals with an ordered list of strings.
type NameField struct {
	kind   NameKind
	values []string
}

// SingleName wraps one raw name string.
func SingleName(s string) NameField {
	return NameField{kind: NameSingle, values: []string{s}}
}

// MultipleNames wraps a list of raw name variants.
func MultipleNames(values []string) NameField {
	return NameField{kind: NameMultiple, values: values}
}

// NoName is the absent variant.
func NoName() NameField {
	return NameField{kind: NameAbsent}
}

// NameFieldFromAny classifies a dynamically-typed name value as produced by
// document decoding. Strings and string lists are accepted; anything else
// (including nil) maps to the absent variant.
func NameFieldFromAny(v any) NameField {
	switch val := v.(type) {
	case string:
		return SingleName(val)
	case []string:
		return MultipleNames(val)
	case []any:
		names := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		return MultipleNames(names)
	default:
		return NoName()
	}
}

// Kind returns the variant discriminator.
func (f NameField) Kind() NameKind {
	return f.kind
}

// Names returns the deduplicated name variants in first-seen order.
// Values are trimmed before comparison; deduplication is by exact string
// equality (case-sensitive), and empty entries are dropped.
func (f NameField) Names() []string {
	if f.kind == NameAbsent {
		return nil
	}

	seen := make(map[string]bool, len(f.values))
	names := make([]string, 0, len(f.values))
	for _, raw := range f.values {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// ComputeGivenName selects the single display name for the record: the first
// extracted name variant, or UnknownName when the record has none. It is pure
// and total; missing data yields the sentinel, never an error.
func (p *Product) ComputeGivenName() string {
	names := p.Name.Names()
	if len(names) == 0 {
		return UnknownName
	}
	return names[0]
}
