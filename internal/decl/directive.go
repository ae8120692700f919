package decl

import (
	"fmt"
	"strings"
)

// DirectiveName is the magic comment that marks a type declaration for
// wrapper generation.
const DirectiveName = "slicewrap:wrap"

// Directive is the parsed argument list of a //slicewrap:wrap comment. The
// raw container spellings are kept as written; Resolve validates them.
type Directive struct {
	Containers []string
}

// IsDirective reports whether the comment line carries the slicewrap
// directive. The line may or may not still carry its leading "//".
func IsDirective(line string) bool {
	rest, ok := directiveRest(line)

	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

// ParseDirective parses a //slicewrap:wrap comment line. It returns false if
// the line is not a slicewrap directive at all, and an error if it is one but
// its arguments are malformed.
func ParseDirective(line string) (Directive, bool, error) {
	if !IsDirective(line) {
		return Directive{}, false, nil
	}

	rest, _ := directiveRest(line)

	var d Directive

	for _, field := range strings.Fields(rest) {
		key, value, found := strings.Cut(field, "=")
		if !found {
			return Directive{}, true, fmt.Errorf("directive argument %q is not key=value", field)
		}

		switch key {
		case "containers":
			for _, name := range strings.Split(value, ",") {
				name = strings.TrimSpace(name)
				if name == "" {
					return Directive{}, true, fmt.Errorf("empty container name in %q", field)
				}

				d.Containers = append(d.Containers, name)
			}
		default:
			return Directive{}, true, fmt.Errorf("unknown directive argument %q", key)
		}
	}

	return d, true, nil
}

func directiveRest(line string) (string, bool) {
	line = strings.TrimPrefix(line, "//")

	if !strings.HasPrefix(line, DirectiveName) {
		return "", false
	}

	return line[len(DirectiveName):], true
}
