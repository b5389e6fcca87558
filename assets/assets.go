// Package assets embeds the files shipped inside the binary.
package assets

import "embed"

// Config holds the default configuration documents.
//
//go:embed config/*.yaml
var Config embed.FS
