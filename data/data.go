// Package data embeds the static reference tables: move attributes,
// the national species list, and per-generation learnsets. The files
// are regenerated by scripts/learnset_grabber.
package data

import "embed"

//go:embed *.json
var Files embed.FS
