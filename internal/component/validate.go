package component

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/opmodel/newcomp/internal/errors"
)

const (
	minNameLength = 2
	maxNameLength = 255
)

// pascalCaseRegex matches PascalCase identifiers.
var pascalCaseRegex = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

// forbiddenChars are rejected by common filesystems.
const forbiddenChars = `<>:"|?*\/`

var windowsReservedNames = setOf(
	"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
)

var jsReservedKeywords = setOf(
	"abstract", "arguments", "await", "boolean", "break", "byte", "case", "catch", "char", "class", "const",
	"continue", "debugger", "default", "delete", "do", "double", "else", "enum", "eval", "export", "extends",
	"false", "final", "finally", "float", "for", "function", "goto", "if", "implements", "import", "in",
	"instanceof", "int", "interface", "let", "long", "native", "new", "null", "package", "private", "protected",
	"public", "return", "short", "static", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "true", "try", "typeof", "var", "void", "volatile", "while", "with", "yield",
)

var reactReservedNames = setOf(
	"Component", "PureComponent", "React", "Fragment", "StrictMode", "Suspense", "Profiler",
	"createElement", "createContext", "createRef", "forwardRef", "lazy", "memo", "useState",
	"useEffect", "useContext", "useReducer", "useCallback", "useMemo", "useRef", "useImperativeHandle",
	"useLayoutEffect", "useDebugValue", "useDeferredValue", "useTransition", "useId", "useSyncExternalStore",
	"ReactDOM", "render", "hydrate", "unmountComponentAtNode", "findDOMNode", "createPortal",
)

var conflictingNames = setOf(
	"Index", "Main", "App", "Root", "Container", "Wrapper", "Layout", "Page", "View", "Screen",
	"Module", "Export", "Import", "Default", "Props", "State", "Ref", "Key", "Children",
	"Document", "Window", "Global", "Console", "Process", "Buffer", "Require",
)

// ValidateName checks that name is usable as a component identifier and
// directory name. The returned error wraps errors.ErrValidation.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	switch {
	case trimmed == "":
		return nameError("component name cannot be empty or whitespace only")
	case strings.HasSuffix(trimmed, "."):
		return nameError("component name cannot end with a period")
	case len(trimmed) > maxNameLength:
		return nameError(fmt.Sprintf("component name is too long (max %d characters)", maxNameLength))
	case len(trimmed) < minNameLength:
		return nameError(fmt.Sprintf("component name must be at least %d characters long", minNameLength))
	case strings.ContainsAny(trimmed, forbiddenChars):
		return nameError(`component name contains forbidden file system characters (< > : " | ? * \ /)`)
	case windowsReservedNames[strings.ToUpper(trimmed)]:
		return nameError(fmt.Sprintf("%q is a reserved Windows filename", trimmed))
	case jsReservedKeywords[strings.ToLower(trimmed)]:
		return nameError(fmt.Sprintf("%q is a reserved JavaScript keyword", trimmed))
	case reactReservedNames[trimmed]:
		return nameError(fmt.Sprintf("%q is a reserved React name and may cause conflicts", trimmed))
	case conflictingNames[trimmed]:
		return nameError(fmt.Sprintf("%q is a common name that may cause conflicts; consider a more specific name", trimmed))
	case !pascalCaseRegex.MatchString(trimmed):
		return nameError("component name must be in PascalCase format (e.g., MyComponent)")
	}

	return nil
}

func nameError(msg string) error {
	return oerrors.NewValidationError(msg, "", "name", "Use a PascalCase name such as UserCard.")
}

func setOf(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, item := range items {
		m[item] = true
	}
	return m
}
