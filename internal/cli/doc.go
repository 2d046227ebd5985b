// Package cli defines the Cobra command tree for the askedit CLI. The root
// command edits skill.json and the locale model documents from flags; the
// show, validate, config and version subcommands each live in their own file.
// Commands only parse flags and format output; editing logic lives in the
// skill package.
package cli
