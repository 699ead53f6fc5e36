// Package assets holds the fixed files shipped inside every exported
// bundle: the hand-authored stylesheet keyed to the class names the
// static block renderers emit, and the bundle README.
package assets

import "embed"

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// Stylesheet returns the exported styles.css content. The class names
// in it are contractually tied to the static HTML renderers; changing
// one side without the other is a silent visual regression.
func Stylesheet() string {
	return mustRead(styles, "styles/export.css")
}

// Readme returns the README.txt content placed at the bundle root.
func Readme() string {
	return mustRead(templates, "templates/README.txt")
}

// mustRead loads an embedded file. Panics on failure: a missing
// embedded asset is a programmer error caught at first use.
func mustRead(fs embed.FS, name string) string {
	data, err := fs.ReadFile(name)
	if err != nil {
		panic("assets: missing embedded file " + name + ": " + err.Error())
	}
	return string(data)
}
