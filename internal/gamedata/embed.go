// Package gamedata provides the embedded rules, palette and message
// catalog, and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds the rules and the message catalog at build time.
//
//go:embed rules.json messages.po
var dataFS embed.FS
