// Package assets embeds the authored Tiled island map.
package assets

import "embed"

// IslandMap is the path of the default authored map inside FS.
const IslandMap = "island.tmx"

//go:embed island.tmx island.tsx
var FS embed.FS
