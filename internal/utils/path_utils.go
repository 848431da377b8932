package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/calcx/internal/config"
)

// BaseName strips the directory and the last extension from path:
// "in/task1.txt" -> "task1", "a.tar.gz" -> "a.tar".
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// OutputFileName derives the result file name for an input file:
// <base>_<name>_<lastname>_<id>.txt
func OutputFileName(input string, id config.Identity) string {
	return BaseName(input) + "_" + id.Name + "_" + id.Lastname + "_" + id.ID + config.SourceFileExt
}

// DefaultOutputDir is the output directory used when none is given:
// <base>_<user>_<id>
func DefaultOutputDir(input, user string, id config.Identity) string {
	return BaseName(input) + "_" + user + "_" + id.ID
}

// CurrentUser returns $USER, or config.DefaultUser when it is unset or empty.
func CurrentUser() string {
	if u := os.Getenv(config.UserEnvVar); u != "" {
		return u
	}
	return config.DefaultUser
}
