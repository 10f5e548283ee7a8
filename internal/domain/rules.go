package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind tells the matcher how to compare a rule against listing entries.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "directory":
		*k = KindDirectory
	case "file":
		*k = KindFile
	default:
		return fmt.Errorf("unknown kind %q", string(text))
	}
	return nil
}

// Rule describes how one category is recognized in a package root.
//
// Directory rules match Canonical (which ends in "/") exactly and treat
// Synonyms as exact names. File rules match Canonical as a case-sensitive
// base name with an optional lowercase extension, and treat Synonyms as
// case-insensitive regular expressions tried in order.
type Rule struct {
	Category    Category `json:"category"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Canonical   string   `json:"canonical"`
	Kind        Kind     `json:"kind"`
	Synonyms    []string `json:"synonyms"`
	WhenAbsent  State    `json:"when_absent"`

	canonicalRe *regexp.Regexp
	synonymRes  []*regexp.Regexp
	synonymSet  map[string]bool
	compiled    bool
}

// IsDirectory reports whether the rule describes a directory.
func (r Rule) IsDirectory() bool { return r.Kind == KindDirectory }

// rules is the layout convention table. Synonyms are the alternative names
// collected from real-world packages and must stay in this exact order.
var rules = compileRules([]Rule{
	{
		Category:    CategoryCommandLineExecutables,
		Label:       "Command-line executables",
		Description: "Command-line executables",
		Canonical:   "bin/",
		Kind:        KindDirectory,
		Synonyms:    []string{"cli/", "script/", "scripts/", "console/", "shell/"},
		WhenAbsent:  StateOptionalNotPresent,
	},
	{
		Category:    CategoryConfigurationFiles,
		Label:       "Configuration files",
		Description: "Configuration files",
		Canonical:   "config/",
		Kind:        KindDirectory,
		Synonyms:    []string{"etc/", "settings/", "configuration/", "configs/", "_config/", "conf/"},
		WhenAbsent:  StateOptionalNotPresent,
	},
	{
		Category:    CategoryDocumentationFiles,
		Label:       "Documentation files",
		Description: "Documentation files",
		Canonical:   "docs/",
		Kind:        KindDirectory,
		Synonyms: []string{
			"doc/", "guide/", "user_guide/", "usage/", "manual/", "manuals/",
			"phpdoc/", "phpdocs/", "apidoc/", "apidocs/", "api-reference/",
			"documentation/", "documents/",
		},
		WhenAbsent: StateOptionalNotPresent,
	},
	{
		Category:    CategoryPublicWebServerFiles,
		Label:       "Public web server files",
		Description: "Public web server files",
		Canonical:   "public/",
		Kind:        KindDirectory,
		Synonyms: []string{
			"asset/", "assets/", "css/", "docroot/", "font/", "fonts/",
			"htdocs/", "html/", "httpdocs/", "icons/", "images/", "img/",
			"imgs/", "javascript/", "javascripts/", "js/", "media/", "mysite/",
			"pages/", "pub/", "public_html/", "publish/", "site/", "static/",
			"style/", "styles/", "web/", "webroot/", "www/", "wwwroot/",
		},
		WhenAbsent: StateOptionalNotPresent,
	},
	{
		Category:    CategoryOtherResourceFiles,
		Label:       "Other resource files",
		Description: "Other resource files",
		Canonical:   "resources/",
		Kind:        KindDirectory,
		Synonyms:    []string{"Resources/", "res/", "resource/", "Resource/", "ressources/", "Ressources/"},
		WhenAbsent:  StateOptionalNotPresent,
	},
	{
		Category:    CategorySourceFiles,
		Label:       "Source files",
		Description: "PHP source files",
		Canonical:   "src/",
		Kind:        KindDirectory,
		Synonyms: []string{
			"exception/", "exceptions/", "src-files/", "traits/", "interfaces/",
			"common/", "sources/", "php/", "inc/", "libraries/", "autoloads/",
			"autoload/", "source/", "includes/", "include/", "lib/", "libs/",
			"library/", "code/", "classes/", "func/", "src-dev/",
		},
		WhenAbsent: StateOptionalNotPresent,
	},
	{
		Category:    CategoryTests,
		Label:       "Tests",
		Description: "Tests",
		Canonical:   "tests/",
		Kind:        KindDirectory,
		Synonyms: []string{
			"test/", "unit-tests/", "phpunit/", "testing/", "unittest/",
			"unit_tests/", "unit_test/", "phpunit-tests/",
		},
		WhenAbsent: StateOptionalNotPresent,
	},
	{
		Category:    CategoryChangelog,
		Label:       "Changelog",
		Description: "Log of changes between releases",
		Canonical:   "CHANGELOG",
		Kind:        KindFile,
		Synonyms: []string{
			`^.*CHANGLOG.*$`,
			`^.*CAHNGELOG.*$`,
			`^WHATSNEW(\.[a-z]+)?$`,
			`^RELEASE((_|-)?NOTES)?(\.[a-z]+)?$`,
			`^RELEASES(\.[a-z]+)?$`,
			`^CHANGES(\.[a-z]+)?$`,
			`^CHANGE(\.[a-z]+)?$`,
			`^HISTORY(\.[a-z]+)?$`,
		},
		WhenAbsent: StateOptionalNotPresent,
	},
	{
		Category:    CategoryContributionGuide,
		Label:       "Contribution guide",
		Description: "Guidelines for contributors",
		Canonical:   "CONTRIBUTING",
		Kind:        KindFile,
		Synonyms: []string{
			`^DEVELOPMENT(\.[a-z]+)?$`,
			`^README\.CONTRIBUTING(\.[a-z]+)?$`,
			`^DEVELOPMENT_README(\.[a-z]+)?$`,
			`^CONTRIBUTE(\.[a-z]+)?$`,
			`^HACKING(\.[a-z]+)?$`,
		},
		WhenAbsent: StateOptionalNotPresent,
	},
	{
		Category:    CategoryLicense,
		Label:       "License",
		Description: "Licensing information",
		Canonical:   "LICENSE",
		Kind:        KindFile,
		Synonyms: []string{
			`^.*EULA.*$`,
			`^.*(GPL|BSD).*$`,
			`^([A-Z-]+)?LI(N)?(S|C)(E|A)N(S|C)(E|A)(_[A-Z_]+)?(\.[a-z]+)?$`,
			`^COPY(I)?NG(\.[a-z]+)?$`,
			`^COPYRIGHT(\.[a-z]+)?$`,
		},
		WhenAbsent: StateRecommendedNotPresent,
	},
	{
		Category:    CategoryReadme,
		Label:       "Readme",
		Description: "Information about the package itself",
		Canonical:   "README",
		Kind:        KindFile,
		Synonyms: []string{
			`^USAGE(\.[a-z]+)?$`,
			`^SUMMARY(\.[a-z]+)?$`,
			`^DESCRIPTION(\.[a-z]+)?$`,
			`^IMPORTANT(\.[a-z]+)?$`,
			`^NOTICE(\.[a-z]+)?$`,
			`^GETTING(_|-)STARTED(\.[a-z]+)?$`,
		},
		WhenAbsent: StateOptionalNotPresent,
	},
})

// Rules returns a copy of the convention table in report order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// RuleFor returns the rule for a category.
func RuleFor(c Category) (Rule, bool) {
	for _, r := range rules {
		if r.Category == c {
			return r, true
		}
	}
	return Rule{}, false
}

// compileRules prepares the matchers for each rule. A bad pattern is a bug
// in the table, so it panics at init.
func compileRules(table []Rule) []Rule {
	for i := range table {
		table[i] = compileRule(table[i])
	}
	return table
}

func compileRule(r Rule) Rule {
	switch r.Kind {
	case KindDirectory:
		if !strings.HasSuffix(r.Canonical, "/") {
			panic(fmt.Sprintf("rule %s: directory canonical %q must end in /", r.Category, r.Canonical))
		}
		r.synonymSet = make(map[string]bool, len(r.Synonyms))
		for _, s := range r.Synonyms {
			r.synonymSet[s] = true
		}
	case KindFile:
		r.canonicalRe = regexp.MustCompile(`^` + regexp.QuoteMeta(r.Canonical) + `(\.[a-z]+)?$`)
		r.synonymRes = make([]*regexp.Regexp, len(r.Synonyms))
		for j, s := range r.Synonyms {
			r.synonymRes[j] = regexp.MustCompile(`(?i)` + s)
		}
	}
	r.compiled = true
	return r
}
