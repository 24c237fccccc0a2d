package patch

import (
	"encoding/json"
	"sort"

	"github.com/jinzhu/copier"
)

// Apply decodes the JSON object raw onto a deep copy of base. It returns the merged
// value and the top-level keys raw carried, sorted. base is never modified, even
// when decoding fails halfway.
func Apply[T any](base T, raw []byte) (T, []string, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return base, nil, err
	}

	var merged T
	if err := copier.CopyWithOption(&merged, base, copier.Option{DeepCopy: true}); err != nil {
		return base, nil, err
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return base, nil, err
	}

	fields := make([]string, 0, len(keys))
	for k := range keys {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return merged, fields, nil
}

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
