package templates

import (
	"regexp"
	"strings"
)

// rule is one denylist entry.
type rule struct {
	description string
	pattern     *regexp.Regexp
}

// quote matches any JavaScript string delimiter.
const quote = "['\"`]"

// moduleImport matches require(), import(), `from` and side-effect import
// references to a module.
func moduleImport(modules string) *regexp.Regexp {
	return regexp.MustCompile(`(?:require\s*\(\s*|import\s*\(\s*|from\s+|\bimport\s+)` +
		quote + `(?:node:)?(?:` + modules + `)` + quote)
}

// denylist is matched case-sensitively against the raw template text.
var denylist = []rule{
	{"dynamic code evaluation", regexp.MustCompile(`\beval\s*\(`)},
	{"dynamic function construction", regexp.MustCompile(`\bFunction\s*\(`)},
	{"child_process import", moduleImport(`child_process`)},
	{"filesystem module import", moduleImport(`fs|fs/promises`)},
	{"process termination", regexp.MustCompile(`\bprocess\.exit\s*\(`)},
	{"process signal", regexp.MustCompile(`\bprocess\.kill\s*\(`)},
	// A bare exec call, or a member call to one of the child_process-only
	// variants. Member .exec( is RegExp.prototype.exec and is not matched.
	{"external process execution", regexp.MustCompile(`(?:(?:^|[^.\w$])exec(?:Sync|File|FileSync)?|\.exec(?:Sync|File|FileSync))\s*\(`)},
	{"external process spawn", regexp.MustCompile(`\bspawn(?:Sync)?\s*\(`)},
}

// exportRegex recognizes an ES module or CommonJS export.
var exportRegex = regexp.MustCompile(`\bexport\s|module\.exports`)

// Advisory is a non-fatal validation finding.
type Advisory struct {
	// Source identifies the template.
	Source string `json:"source" yaml:"source"`

	// Message describes the finding.
	Message string `json:"message" yaml:"message"`
}

// Validate scans raw template text for denylisted constructs.
// It returns a *SecurityError on the first match, and otherwise the
// advisories for a missing export or missing component name placeholders.
func Validate(raw, source string) ([]Advisory, error) {
	for _, r := range denylist {
		if m := r.pattern.FindString(raw); m != "" {
			return nil, &SecurityError{Source: source, Rule: r.description, Match: m}
		}
	}

	var advisories []Advisory

	if !exportRegex.MatchString(raw) {
		advisories = append(advisories, Advisory{
			Source:  source,
			Message: "template may not have a proper export statement",
		})
	}

	if !usesNamePlaceholder(raw) {
		advisories = append(advisories, Advisory{
			Source:  source,
			Message: "template does not use {{componentName}} or {{ComponentName}} variables",
		})
	}

	return advisories, nil
}

func usesNamePlaceholder(raw string) bool {
	for _, name := range ComponentVariableNames() {
		if strings.Contains(raw, Placeholder(name)) {
			return true
		}
	}
	return false
}
