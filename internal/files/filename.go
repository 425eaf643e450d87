package files

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

var windowsDeviceNames = buildWindowsDeviceNames()

func buildWindowsDeviceNames() map[string]bool {
	names := []string{"CON", "PRN", "AUX", "NUL"}
	for i := 1; i <= 9; i++ {
		names = append(names, "COM"+string(rune('0'+i)), "LPT"+string(rune('0'+i)))
	}

	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// SecureFilename reduces name to a single flat ASCII path component:
// separators become spaces, whitespace runs become underscores, anything
// outside [A-Za-z0-9_.-] is dropped and leading or trailing dots and
// underscores are trimmed. The result may be empty.
func SecureFilename(name string) string {
	name = foldToASCII(name)

	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if name != "" {
		stem, _, _ := strings.Cut(name, ".")
		if windowsDeviceNames[strings.ToUpper(stem)] {
			name = "_" + name
		}
	}

	return name
}

func foldToASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFKD.String(s) {
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AllowList is a case-insensitive set of file extensions, stored without
// the leading dot.
type AllowList struct {
	exts   map[string]bool
	sorted []string
}

func NewAllowList(exts []string) AllowList {
	a := AllowList{exts: make(map[string]bool, len(exts))}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimLeft(ext, "."))
		if ext == "" || a.exts[ext] {
			continue
		}
		a.exts[ext] = true
		a.sorted = append(a.sorted, ext)
	}
	sort.Strings(a.sorted)
	return a
}

// Extension returns the lowercased text after the last dot of name.
func Extension(name string) (string, bool) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", false
	}
	return strings.ToLower(name[i+1:]), true
}

func (a AllowList) Allowed(name string) bool {
	ext, ok := Extension(name)
	return ok && a.exts[ext]
}

func (a AllowList) Extensions() []string {
	out := make([]string, len(a.sorted))
	copy(out, a.sorted)
	return out
}

func (a AllowList) String() string {
	return strings.Join(a.sorted, ", ")
}
