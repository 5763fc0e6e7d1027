package resume

import "strings"

// Naming conventions recognized by the pairing heuristic.
const (
	dataSuffix  = "-resume-data"
	photoSuffix = "-profile-photo"
	dataPrefix  = "resume-"
	photoPrefix = "profile-"
)

// MatchPhoto pairs a resume data file stem with a photo stem by naming
// convention. Rules are applied in order, and the first rule that matches
// wins; candidates are tried in the order given (alphabetical in practice):
//
//  1. exact stem equality
//  2. suffix convention: "<name>-resume-data" pairs "<name>-profile-photo"
//  3. prefix convention: "resume-<name>" pairs "profile-<name>"
//  4. shared leading token before the first separator, when the data stem
//     contains "resume" and the candidate stem contains "profile"
//
// No match yields ("", false), not an error.
func MatchPhoto(dataStem string, pngStems []string) (string, bool) {
	// Rule 1: exact stem equality.
	for _, stem := range pngStems {
		if stem == dataStem {
			return stem, true
		}
	}

	// Rule 2: suffix convention.
	if name, ok := strings.CutSuffix(dataStem, dataSuffix); ok {
		want := name + photoSuffix
		for _, stem := range pngStems {
			if stem == want {
				return stem, true
			}
		}
	}

	// Rule 3: prefix convention.
	if name, ok := strings.CutPrefix(dataStem, dataPrefix); ok {
		want := photoPrefix + name
		for _, stem := range pngStems {
			if stem == want {
				return stem, true
			}
		}
	}

	// Rule 4: shared leading token with domain keywords.
	if strings.Contains(dataStem, "resume") {
		token := leadingToken(dataStem)
		for _, stem := range pngStems {
			if strings.Contains(stem, "profile") && leadingToken(stem) == token {
				return stem, true
			}
		}
	}

	return "", false
}

// leadingToken returns the part of a stem before the first "-" or "_"
// separator, or the whole stem when it has none.
func leadingToken(stem string) string {
	if i := strings.IndexAny(stem, "-_"); i >= 0 {
		return stem[:i]
	}
	return stem
}
