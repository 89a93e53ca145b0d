package nametag

import (
	"fmt"
	"strings"
)

// Prefix is the file-derived naming prefix in both separator conventions.
// A design named "dpx_widget.f3d" produces {Underscore: "dpx_", Dash: "dpx-"},
// and bodies named either "dpx_lever" or "dpx-lever" are considered tagged.
type Prefix struct {
	Underscore string
	Dash       string
}

// ComputePrefix derives the prefix from a document's display name: the
// segment before the first underscore, or the first three characters when
// the name has no underscore, lowercased with a trailing separator.
func ComputePrefix(documentName string) Prefix {
	var base string
	if idx := strings.Index(documentName, "_"); idx >= 0 {
		base = documentName[:idx]
	} else if len(documentName) > 3 {
		base = documentName[:3]
	} else {
		base = documentName
	}

	underscore := strings.ToLower(base) + "_"
	return Prefix{
		Underscore: underscore,
		Dash:       strings.ReplaceAll(underscore, "_", "-"),
	}
}

// String returns the underscore form, which is what user-facing messages show.
func (p Prefix) String() string {
	return p.Underscore
}

// Matches reports whether a node name belongs to this prefix. The version
// suffix is removed first and the comparison is case-insensitive. Empty
// names never match.
func (p Prefix) Matches(name string) bool {
	if name == "" {
		return false
	}
	base := strings.ToLower(StripVersion(name))
	return strings.HasPrefix(base, p.Underscore) || strings.HasPrefix(base, p.Dash)
}

// SplitVersion splits one trailing version suffix off a name. It only
// recognizes "_v" followed by decimal digits at the very end of the name,
// so "dpx_vertical_mount" is left alone while "dpx_bracket_v2" splits into
// ("dpx_bracket", 2, true).
func SplitVersion(name string) (base string, version int, tagged bool) {
	end := len(name)
	i := end
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == end || i < 2 || name[i-1] != 'v' || name[i-2] != '_' {
		return name, 0, false
	}
	for _, c := range name[i:] {
		version = version*10 + int(c-'0')
	}
	return name[:i-2], version, true
}

// StripVersion removes every trailing version suffix from a name, so the
// result never ends in "_v<digits>" and stripping is idempotent.
func StripVersion(name string) string {
	for {
		base, _, tagged := SplitVersion(name)
		if !tagged {
			return name
		}
		name = base
	}
}

// NextName builds the tagged name for the next save version.
func NextName(baseName string, nextVersion int) string {
	return fmt.Sprintf("%s_v%d", baseName, nextVersion)
}

// Retagged strips the old suffix and applies the new version in one step.
func Retagged(name string, nextVersion int) string {
	return NextName(StripVersion(name), nextVersion)
}
