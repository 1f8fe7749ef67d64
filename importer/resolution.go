/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

// Outcome tags a Resolution.
type Outcome int

const (
	// NotFound means no file matched. It is not an error.
	NotFound Outcome = iota
	// Found means exactly one file matched.
	Found
	// Ambiguous means several files matched a lookup that allows one.
	Ambiguous
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not found"
	case Found:
		return "found"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving one specifier.
type Resolution struct {
	Outcome Outcome

	// Path is the resolved file when Outcome is Found.
	Path string

	// Candidates lists every match when Outcome is Ambiguous.
	Candidates []string
}

// Err returns an *AmbiguousImportError for ambiguous resolutions and nil
// otherwise.
func (r Resolution) Err() error {
	if r.Outcome != Ambiguous {
		return nil
	}
	return &AmbiguousImportError{Paths: r.Candidates}
}

// exactlyOne chooses the single candidate, if there is exactly one.
func exactlyOne(candidates []string) Resolution {
	switch len(candidates) {
	case 0:
		return Resolution{Outcome: NotFound}
	case 1:
		return Resolution{Outcome: Found, Path: candidates[0]}
	default:
		return Resolution{Outcome: Ambiguous, Candidates: candidates}
	}
}
