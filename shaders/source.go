package shaders

import (
	"fmt"
	"strings"
)

// Source describes a shader program to assemble: an ordered list of WGSL
// fragments and the defines that select their conditional blocks. WGSL has no
// preprocessor, so #ifdef / #ifndef / #else / #endif are resolved here and
// never appear in the combined output.
type Source struct {
	Defines         []string
	Sources         []string
	IncludeBuiltins bool
}

// Combine resolves the directives in every source against the define set and
// joins the survivors into one module. With IncludeBuiltins the shared
// declarations from builtins.wgsl are prepended, exactly once. Empty sources
// are skipped. The result is deterministic for a given Source value.
//
// Malformed directives are programmer errors and panic with the source index
// and line.
func (s Source) Combine() string {
	defines := make(map[string]bool, len(s.Defines))
	for _, d := range s.Defines {
		defines[d] = true
	}

	parts := make([]string, 0, len(s.Sources)+1)
	if s.IncludeBuiltins {
		parts = append(parts, strings.TrimRight(BuiltinsWGSL, "\n"))
	}
	for i, src := range s.Sources {
		resolved := resolveDirectives(src, defines, i)
		if strings.TrimSpace(resolved) == "" {
			continue
		}
		parts = append(parts, resolved)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// branch tracks one open #ifdef block. The current branch is emitted when the
// enclosing block was active and the condition matches the side we are on.
type branch struct {
	parentActive bool
	condTrue     bool
	seenElse     bool
}

func (b branch) active() bool {
	return b.parentActive && (b.condTrue != b.seenElse)
}

func resolveDirectives(src string, defines map[string]bool, sourceIndex int) string {
	var out strings.Builder
	var stack []branch

	active := func() bool {
		if len(stack) == 0 {
			return true
		}
		return stack[len(stack)-1].active()
	}

	lines := strings.Split(src, "\n")
	for n, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			if active() {
				out.WriteString(line)
				out.WriteByte('\n')
			}
			continue
		}

		fields := strings.Fields(trimmed)
		switch fields[0] {
		case "#ifdef", "#ifndef":
			if len(fields) < 2 {
				directivePanic(sourceIndex, n+1, "%s missing name", fields[0])
			}
			cond := defines[fields[1]]
			if fields[0] == "#ifndef" {
				cond = !cond
			}
			stack = append(stack, branch{parentActive: active(), condTrue: cond})
		case "#else":
			if len(stack) == 0 {
				directivePanic(sourceIndex, n+1, "#else without #ifdef")
			}
			top := &stack[len(stack)-1]
			if top.seenElse {
				directivePanic(sourceIndex, n+1, "duplicate #else")
			}
			top.seenElse = true
		case "#endif":
			if len(stack) == 0 {
				directivePanic(sourceIndex, n+1, "#endif without #ifdef")
			}
			stack = stack[:len(stack)-1]
		default:
			directivePanic(sourceIndex, n+1, "unknown directive %q", fields[0])
		}
	}
	if len(stack) != 0 {
		directivePanic(sourceIndex, len(lines), "unterminated #ifdef")
	}
	return strings.TrimRight(out.String(), "\n")
}

func directivePanic(sourceIndex, line int, format string, args ...any) {
	panic(fmt.Sprintf("shaders: source %d line %d: %s", sourceIndex, line, fmt.Sprintf(format, args...)))
}
