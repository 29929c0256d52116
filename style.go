// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import (
	"os"
	"strings"
)

// styleTag is the opening tag that CSS imports are added after.
const styleTag = "<style>"

// AddCSSImportToStyle inserts the CSS import on a new line directly after the
// first <style> tag in the given HTML. The rest of the HTML is unchanged. If
// there's no <style> tag, the HTML is returned as is and ok is false.
func AddCSSImportToStyle(html, cssImport string) (out string, ok bool) {
	var i int
	if i = strings.Index(html, styleTag); i < 0 {
		out = html
		return
	}
	i += len(styleTag)
	var b strings.Builder
	b.Grow(len(html) + len(cssImport) + 1)
	b.WriteString(html[:i])
	b.WriteByte('\n')
	b.WriteString(cssImport)
	b.WriteString(html[i:])
	out, ok = b.String(), true
	return
}

// AddImportToHTMLFile rewrites the named HTML file with the CSS import added
// by AddCSSImportToStyle. If the file has no <style> tag, it's not rewritten
// and StyleTagNotFoundError is returned.
func AddImportToHTMLFile(path, cssImport string) (err error) {
	var b []byte
	if b, err = os.ReadFile(path); err != nil {
		err = &FileIOError{"read", path, err}
		return
	}
	h, ok := AddCSSImportToStyle(string(b), cssImport)
	if !ok {
		err = StyleTagNotFoundError{path}
		return
	}
	var fi os.FileInfo
	if fi, err = os.Stat(path); err != nil {
		err = &FileIOError{"stat", path, err}
		return
	}
	if err = os.WriteFile(path, []byte(h), fi.Mode().Perm()); err != nil {
		err = &FileIOError{"write", path, err}
	}
	return
}
