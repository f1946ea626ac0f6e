package template

import (
	stderrors "errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/logging"
	"github.com/vincentqb/DotDash/pkg/types"
)

const (
	// TemplateSuffix marks files that are rendered before linking
	TemplateSuffix = ".template"

	// RenderedSuffix marks rendering outputs; these are linked in place
	// of their template and never treated as profile entries themselves
	RenderedSuffix = ".rendered"
)

// Mode controls what happens when a template references an undefined variable
type Mode int

const (
	// ModeFail reports undefined variables as an error and produces no output
	ModeFail Mode = iota

	// ModeEmpty substitutes the empty string for undefined variables
	ModeEmpty
)

// String returns the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case ModeEmpty:
		return "empty"
	default:
		return "fail"
	}
}

// ParseMode converts a configuration value into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail":
		return ModeFail, nil
	case "empty":
		return ModeEmpty, nil
	default:
		return ModeFail, errors.Newf(errors.ErrInvalidInput, "invalid render mode %q (expected \"fail\" or \"empty\")", s)
	}
}

// IsTemplate reports whether the entry name carries the template suffix
func IsTemplate(name string) bool {
	return strings.HasSuffix(name, TemplateSuffix)
}

// IsRendered reports whether the entry name carries the rendered suffix
func IsRendered(name string) bool {
	return strings.HasSuffix(name, RenderedSuffix)
}

// RenderedPath returns the sibling output path for a template path
func RenderedPath(path string) string {
	return strings.TrimSuffix(path, TemplateSuffix) + RenderedSuffix
}

// DisplayName strips the template or rendered suffix from an entry name.
// The result is the name the linked dotfile is derived from.
func DisplayName(name string) string {
	if IsTemplate(name) {
		return strings.TrimSuffix(name, TemplateSuffix)
	}
	if IsRendered(name) {
		return strings.TrimSuffix(name, RenderedSuffix)
	}
	return name
}

// Render substitutes $NAME and ${NAME} references in content using vars.
// $$ produces a literal dollar sign; a dollar sign followed by anything
// else passes through unchanged. Under ModeFail the returned error names
// every undefined variable and no content is returned; under ModeEmpty
// undefined variables become empty strings.
func Render(content string, vars map[string]string, mode Mode) (string, error) {
	var out strings.Builder
	out.Grow(len(content))

	var missing []string
	seen := make(map[string]bool)

	resolve := func(name string) string {
		if val, ok := vars[name]; ok {
			return val
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return ""
	}

	for i := 0; i < len(content); {
		c := content[i]
		if c != '$' {
			out.WriteByte(c)
			i++
			continue
		}

		if i+1 >= len(content) {
			// Trailing dollar sign is literal
			out.WriteByte('$')
			i++
			continue
		}

		next := content[i+1]
		switch {
		case next == '$':
			out.WriteByte('$')
			i += 2

		case next == '{':
			end := strings.IndexByte(content[i+2:], '}')
			if end < 0 {
				// Unterminated brace is literal
				out.WriteByte('$')
				i++
				continue
			}
			name := content[i+2 : i+2+end]
			if !isValidName(name) {
				out.WriteString(content[i : i+3+end])
				i += 3 + end
				continue
			}
			out.WriteString(resolve(name))
			i += 3 + end

		case isNameStart(next):
			j := i + 1
			for j < len(content) && isNameChar(content[j]) {
				j++
			}
			out.WriteString(resolve(content[i+1 : j]))
			i = j

		default:
			// $1, $*, "$ " and friends are literal
			out.WriteByte('$')
			i++
		}
	}

	if mode == ModeFail && len(missing) > 0 {
		sort.Strings(missing)
		return "", errors.Newf(errors.ErrMissingVariable, "undefined variable(s): %s", strings.Join(missing, ", ")).
			WithDetail("variables", missing)
	}

	return out.String(), nil
}

// RenderFile renders the template at path and writes the output to the
// sibling rendered path, overwriting any previous output. The rendered
// file inherits the template's permission bits. It returns the path of
// the written file.
func RenderFile(fsys types.FS, path string, vars map[string]string, mode Mode) (string, error) {
	logger := logging.GetLogger("template")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot read template %s", path)
	}

	rendered, err := Render(string(data), vars, mode)
	if err != nil {
		var dderr *errors.DotdashError
		if stderrors.As(err, &dderr) {
			dderr.WithDetail("path", path)
		}
		return "", err
	}

	perm := fs.FileMode(0644)
	if info, serr := fsys.Stat(path); serr == nil {
		perm = info.Mode().Perm()
	}

	outPath := RenderedPath(path)
	if err := fsys.WriteFile(outPath, []byte(rendered), perm); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write rendered file %s", outPath)
	}

	logger.Debug().
		Str("template", path).
		Str("rendered", outPath).
		Int("bytes", len(rendered)).
		Msg("Rendered template")

	return outPath, nil
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}

func isValidName(name string) bool {
	if name == "" || !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return false
		}
	}
	return true
}
