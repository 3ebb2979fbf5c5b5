package mdbook

import (
	"strings"

	"golang.org/x/mod/semver"
)

// BuiltForVersion is the mdBook release the preprocessor is developed against.
const BuiltForVersion = "0.4.52"

// VersionMismatch reports whether running under mdBook version got may
// produce different results than BuiltForVersion. Versions are compared on
// major.minor; an unparsable version counts as a mismatch.
func VersionMismatch(got string) bool {
	g := canonical(got)
	if !semver.IsValid(g) {
		return true
	}
	return semver.MajorMinor(g) != semver.MajorMinor(canonical(BuiltForVersion))
}

func canonical(v string) string {
	return "v" + strings.TrimPrefix(strings.TrimSpace(v), "v")
}
