package utils

import (
	"github.com/mitchellh/go-homedir"
	"path"
)

const HomeFolder = "~/.seedrand"

// ExpandPath resolves a leading ~ in filePath to the user's home folder.
func ExpandPath(filePath string) (string, error) {
	return homedir.Expand(filePath)
}

// HomePath returns name inside the application home folder, expanded.
func HomePath(name string) (string, error) {
	return ExpandPath(path.Join(HomeFolder, name))
}
