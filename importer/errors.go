/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAmbiguousImport indicates that more than one file matched where exactly
// one was required.
var ErrAmbiguousImport = errors.New("ambiguous import")

// AmbiguousImportError lists every file that matched an ambiguous lookup,
// in the order they were found.
type AmbiguousImportError struct {
	Paths []string
}

func (e *AmbiguousImportError) Error() string {
	var b strings.Builder
	b.WriteString("It's not clear which file to import. Found:")
	for _, p := range e.Paths {
		b.WriteString("\n  ")
		b.WriteString(PrettyURI(p))
	}
	return b.String()
}

// Unwrap lets errors.Is match ErrAmbiguousImport.
func (e *AmbiguousImportError) Unwrap() error {
	return ErrAmbiguousImport
}

// UnknownModeError is returned by ParseMode for unrecognized names.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown resolution mode %q (want import or use)", e.Mode)
}
