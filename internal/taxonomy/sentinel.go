package taxonomy

import "strings"

// Unknown is the placeholder extractors emit for a field they could not fill.
const Unknown = "unknown"

var unknownValues = map[string]struct{}{
	"":      {},
	Unknown: {},
	"未知": {},
	"n/a":   {},
	"none":  {},
	"null":  {},
}

// IsUnknown reports whether v carries no usable information.
func IsUnknown(v string) bool {
	_, ok := unknownValues[strings.ToLower(strings.TrimSpace(v))]
	return ok
}
