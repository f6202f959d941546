// Package templates embeds the project trees copied by each variant.
// Dotfiles are stored under staging names (gitignore, npmignore) and
// restored after copying.
package templates

import (
	"embed"
	iofs "io/fs"
	"os"
)

//go:embed all:node-plugin all:web
var embedded embed.FS

// FS returns the embedded template tree.
func FS() iofs.FS {
	return embedded
}

// Dir returns a template tree rooted at dir on disk.
func Dir(dir string) iofs.FS {
	return os.DirFS(dir)
}
