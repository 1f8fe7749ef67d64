/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package conflicts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}
	return root
}

func execute(t *testing.T, root string) (string, error) {
	t.Helper()
	viper.Set("root", root)
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SetArgs([]string{})
	err := Cmd.Execute()
	return out.String(), err
}

func TestConflictsCommand_ReportsAmbiguity(t *testing.T) {
	root := tree(t, "styles/_a.scss", "styles/a.scss", "styles/b.scss")

	out, err := execute(t, root)
	require.EqualError(t, err, "found 2 ambiguous specifiers")
	assert.Contains(t, out, "styles/a (@import)\n  styles/_a.scss\n  styles/a.scss\n")
	assert.Contains(t, out, "styles/a (@use)\n")
	assert.Contains(t, out, "2 conflicts in 2 specifiers (3 files)\n")
}

func TestConflictsCommand_Clean(t *testing.T) {
	root := tree(t, "styles/_a.scss", "styles/b.sass")

	out, err := execute(t, root)
	require.NoError(t, err)
	assert.Equal(t, "0 conflicts in 2 specifiers (2 files)\n", out)
}
