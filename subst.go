package seascript

import "regexp"

// placeholderPattern matches ${name} occurrences. Names may not contain
// '}' but are otherwise unconstrained, matching what "set" will accept.
var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substitute rewrites every ${name} placeholder in line using the variable
// table. Unknown names are left literally unreplaced; a variable may
// legitimately be optional in a script. The replacement is a single
// left-to-right pass, so a substituted value is never re-scanned for
// further placeholders.
func substitute(line string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(line, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}
