package domain

import "strings"

// Listing is the ordered set of top-level entry names in a package root.
// Directory entries carry a trailing "/".
type Listing []string

// IsDirEntry reports whether a listing entry names a directory.
func IsDirEntry(entry string) bool {
	return strings.HasSuffix(entry, "/")
}

// Match classifies one rule against the listing. Entries are scanned front
// to back and the first hit of either kind wins, even when a canonical name
// appears later in the listing. Within a single entry the canonical form is
// tested before any synonym.
func Match(listing Listing, rule Rule) CategoryResult {
	if !rule.compiled {
		rule = compileRule(rule)
	}

	result := CategoryResult{
		Category: rule.Category,
		Label:    rule.Label,
		Expected: rule.Canonical,
	}

	for _, entry := range listing {
		entry = strings.TrimSpace(entry)
		if state, ok := rule.classify(entry); ok {
			result.State = state
			result.Actual = entry
			return result
		}
	}

	result.State = rule.absentState()
	return result
}

func (r Rule) classify(entry string) (State, bool) {
	if r.Kind == KindDirectory {
		switch {
		case entry == r.Canonical:
			return StateCorrectPresent, true
		case r.synonymSet[entry]:
			return StateIncorrectPresent, true
		}
		return 0, false
	}

	if r.canonicalRe.MatchString(entry) {
		return StateCorrectPresent, true
	}
	for _, re := range r.synonymRes {
		if re.MatchString(entry) {
			return StateIncorrectPresent, true
		}
	}
	return 0, false
}

// absentState is the outcome when nothing in the listing matched. Directory
// rules are always optional.
func (r Rule) absentState() State {
	if r.Kind == KindDirectory || r.WhenAbsent == 0 {
		return StateOptionalNotPresent
	}
	return r.WhenAbsent
}
