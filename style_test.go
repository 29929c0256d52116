// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCSSImportToStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			"simple",
			"<html><style>\nbody{}\n</style></html>",
			"<html><style>\n@import X;\nbody{}\n</style></html>",
			true,
		},
		{
			"first only",
			"<style>a{}</style><style>b{}</style>",
			"<style>\n@import X;a{}</style><style>b{}</style>",
			true,
		},
		{
			"no style",
			"<html><body></body></html>",
			"<html><body></body></html>",
			false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := AddCSSImportToStyle(tt.in, "@import X;")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestAddImportToHTMLFile(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, os.WriteFile(p, []byte("<head><style>\n</style></head>"),
		0o600))
	require.NoError(t, AddImportToHTMLFile(p, "@import url('f');"))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "<head><style>\n@import url('f');\n</style></head>", string(b))
	fi, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestAddImportToHTMLFileNoStyle(t *testing.T) {
	t.Parallel()

	const h = "<html></html>"
	p := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, os.WriteFile(p, []byte(h), 0o644))
	err := AddImportToHTMLFile(p, "@import X;")
	var s StyleTagNotFoundError
	require.ErrorAs(t, err, &s)
	assert.Equal(t, p, s.Path)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, h, string(b))
}

func TestAddImportToHTMLFileMissing(t *testing.T) {
	t.Parallel()

	err := AddImportToHTMLFile(filepath.Join(t.TempDir(), "none.html"), "x")
	var f *FileIOError
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "read", f.Op)
}

func TestAddImportToHTMLFileReadOnly(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("file permissions aren't enforced for root")
	}
	const h = "<style></style>"
	p := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, os.WriteFile(p, []byte(h), 0o444))
	err := AddImportToHTMLFile(p, "@import X;")
	var f *FileIOError
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "write", f.Op)
	assert.Equal(t, p, f.Path)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, h, string(b))
}
