// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import "fmt"

// Registry maps names to Configurers, and tracks which one is active. Themes
// are activated for a scope with Enable or With, and nothing is active outside
// of those scopes.
//
// Registry is not safe for concurrent use.
type Registry struct {
	themes map[string]Configurer
	active themeStack
}

// NewRegistry returns a new, empty Registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]Configurer)}
}

// Register adds a Configurer under the given name. An existing registration
// with the same name is replaced.
func (r *Registry) Register(name string, c Configurer) {
	r.themes[name] = c
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	return len(r.themes)
}

// Get returns the Configurer registered under name.
func (r *Registry) Get(name string) (c Configurer, ok bool) {
	c, ok = r.themes[name]
	return
}

// Enable makes the named theme active, and returns a function that restores
// the previously active theme, if any. The restore function must be called
// exactly once, normally with defer.
func (r *Registry) Enable(name string) (restore func(), err error) {
	if _, ok := r.themes[name]; !ok {
		err = UnknownThemeError{name}
		return
	}
	r.active.push(name)
	restore = func() {
		r.active.pop()
	}
	return
}

// With calls f with the named theme active, and restores the previously active
// theme after f returns.
func (r *Registry) With(name string, f func() error) (err error) {
	var restore func()
	if restore, err = r.Enable(name); err != nil {
		return
	}
	defer restore()
	err = f()
	return
}

// Active returns the config for the active theme. If no theme is active, ok is
// false.
func (r *Registry) Active() (cfg ThemeConfig, ok bool) {
	var n string
	if n, ok = r.active.top(); !ok {
		return
	}
	var c Configurer
	if c, ok = r.themes[n]; !ok {
		return
	}
	cfg = c.Config()
	return
}

// ActiveName returns the name of the active theme, or the empty string if no
// theme is active.
func (r *Registry) ActiveName() (name string) {
	name, _ = r.active.top()
	return
}

// themeStack is a stack of theme names, where the top is the active theme.
type themeStack []string

// push adds a name to the stack.
func (s *themeStack) push(name string) {
	*s = append(*s, name)
}

// pop removes the top name from the stack.
func (s *themeStack) pop() {
	if len(*s) == 0 {
		panic("pop called on empty themeStack")
	}
	*s = (*s)[:len(*s)-1]
}

// top returns the name at the top of the stack.
func (s themeStack) top() (name string, ok bool) {
	if len(s) == 0 {
		return
	}
	name, ok = s[len(s)-1], true
	return
}

// UnknownThemeError is returned when a theme name is not registered or
// defined.
type UnknownThemeError struct {
	Name string
}

// Error implements error
func (u UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme: '%s'", u.Name)
}
