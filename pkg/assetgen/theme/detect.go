package theme

import (
	"os"
	"regexp"
)

// mediaPrintPattern matches a print media query: "@media print",
// "@media only print", "@media screen, print { ... }" and the like. The
// media-type list between "@media" and the block never contains braces.
var mediaPrintPattern = regexp.MustCompile(`(?s)@media[^{]*\bprint\b`)

// HasMediaQueryPrint reports whether the CSS file at path contains a
// print media query. A read failure degrades to false; the manifest field
// is informational and must not abort the run.
func HasMediaQueryPrint(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return mediaPrintPattern.Match(data)
}
