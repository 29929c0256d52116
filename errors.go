// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import "fmt"

// DataLoadError is returned when the data file can't be read or parsed.
type DataLoadError struct {
	Path string
	Err  error
}

// Error implements error
func (d *DataLoadError) Error() string {
	return fmt.Sprintf("error loading data from '%s': %s", d.Path, d.Err)
}

// Unwrap returns the underlying error.
func (d *DataLoadError) Unwrap() error {
	return d.Err
}

// MissingKeyError is returned when a percentile label needed for a
// calculation is not in the data.
type MissingKeyError struct {
	Key string
}

// Error implements error
func (m MissingKeyError) Error() string {
	return fmt.Sprintf("percentile '%s' not found in data", m.Key)
}

// FileIOError is returned when the output file can't be written, read back or
// rewritten.
type FileIOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements error
func (f *FileIOError) Error() string {
	return fmt.Sprintf("%s '%s': %s", f.Op, f.Path, f.Err)
}

// Unwrap returns the underlying error.
func (f *FileIOError) Unwrap() error {
	return f.Err
}

// StyleTagNotFoundError is returned when a CSS import can't be added to an
// HTML file because it has no <style> tag.
type StyleTagNotFoundError struct {
	Path string
}

// Error implements error
func (s StyleTagNotFoundError) Error() string {
	return fmt.Sprintf("no %s tag found in '%s'", styleTag, s.Path)
}

// SubtitleFormatError is returned when the configured subtitle isn't a format
// string for exactly one integer.
type SubtitleFormatError struct {
	Format string
}

// Error implements error
func (s SubtitleFormatError) Error() string {
	return fmt.Sprintf("subtitle must contain exactly one %%d verb: '%s'",
		s.Format)
}
