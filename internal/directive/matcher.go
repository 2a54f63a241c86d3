package directive

import "strings"

// Match reports whether any of the aircraft's free-text modification records
// satisfies this constraint. The candidate set is the canonical mod_id plus
// every alias; a record satisfies the constraint when a case-folded,
// whitespace-trimmed candidate occurs as a contiguous substring of the
// case-folded, trimmed record. The asymmetry matters: the constraint
// identifier must be contained in the record, not the other way around, so
// "A320-57-1089" matches the longer record "SB A320-57-1089 Rev 04".
//
// The first matching record is returned for the evaluation reason trail.
func (c ModificationConstraint) Match(modifications []string) (string, bool) {
	candidates := make([]string, 0, 1+len(c.Aliases))
	if norm := normalizeModText(c.ModID); norm != "" {
		candidates = append(candidates, norm)
	}
	for _, alias := range c.Aliases {
		if norm := normalizeModText(alias); norm != "" {
			candidates = append(candidates, norm)
		}
	}

	for _, record := range modifications {
		normalized := normalizeModText(record)
		if normalized == "" {
			continue
		}
		for _, candidate := range candidates {
			if strings.Contains(normalized, candidate) {
				return record, true
			}
		}
	}

	return "", false
}

func normalizeModText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
