package templates

import (
	"regexp"
	"sort"
	"strings"
)

// placeholderRegex matches {{name}} where name is one or more word characters.
var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Variable names supplied by ComponentVariables.
const (
	VarComponentName      = "ComponentName"
	VarComponentNameAlias = "componentName"
	VarComponentNameUpper = "COMPONENT_NAME"
	VarComponentNameLower = "component_name"
)

// Placeholder returns the token for name, e.g. {{ComponentName}}.
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// ExtractVariables returns the distinct placeholder names referenced in raw,
// sorted. Text without placeholders yields an empty result.
func ExtractVariables(raw string) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, m := range placeholderRegex.FindAllStringSubmatch(raw, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	sort.Strings(names)
	return names
}

// Substitute replaces every placeholder whose name is in vars with its value.
// Unknown placeholders are left verbatim. The text is scanned once, so a
// substituted value is never itself re-scanned for placeholders.
// Values are inserted literally without escaping.
func Substitute(raw string, vars map[string]string) string {
	if len(vars) == 0 {
		return raw
	}
	return placeholderRegex.ReplaceAllStringFunc(raw, func(token string) string {
		if value, ok := vars[token[2:len(token)-2]]; ok {
			return value
		}
		return token
	})
}

// ComponentVariables returns the conventional variables derived from a
// component name: the name verbatim under two aliases, upper-cased and lower-cased.
func ComponentVariables(name string) map[string]string {
	return map[string]string{
		VarComponentName:      name,
		VarComponentNameAlias: name,
		VarComponentNameUpper: strings.ToUpper(name),
		VarComponentNameLower: strings.ToLower(name),
	}
}

// ComponentVariableNames returns the keys of ComponentVariables in a fixed order.
func ComponentVariableNames() []string {
	return []string{VarComponentName, VarComponentNameAlias, VarComponentNameUpper, VarComponentNameLower}
}
