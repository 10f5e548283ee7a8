package domain

// Validate runs every rule against the listing in table order and derives
// the compliance verdict. A report is compliant unless some category is
// incorrectly named or a recommended item is missing.
func Validate(listing Listing) *Report {
	return ValidateRules(listing, rules)
}

// ValidateRules is Validate over an explicit rule set.
func ValidateRules(listing Listing, set []Rule) *Report {
	report := &Report{
		Compliant: true,
		Results:   make([]CategoryResult, 0, len(set)),
	}

	for _, rule := range set {
		res := Match(listing, rule)
		if res.Violates() {
			report.Compliant = false
		}
		report.Results = append(report.Results, res)
	}

	return report
}
