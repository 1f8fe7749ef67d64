/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importcache

import "errors"

// ErrNotFound indicates that no importer could find a stylesheet.
var ErrNotFound = errors.New("can't find stylesheet to import")
