package config

import "strings"

// SourceFileExt is the extension of input files picked up by directory scans
// and the extension of every output file.
const SourceFileExt = ".txt"

// ConfigFileName is looked up in the working directory and its parents.
const ConfigFileName = "calcx.yaml"

// Identity parts baked into output names:
// <input>_<Name>_<Lastname>_<ID>.txt and <input>_<user>_<ID>/.
const (
	DefaultName     = "Ilkim"
	DefaultLastname = "Sonal"
	DefaultID       = "211ADB102"
)

// DefaultUser is used when $USER is unset or empty.
const DefaultUser = "user"

// UserEnvVar names the environment variable holding the current user.
const UserEnvVar = "USER"

// DefaultLogLevel is used when neither config nor flags set a level.
const DefaultLogLevel = "info"

// DefaultListenAddr is where `calcx serve` listens unless told otherwise.
const DefaultListenAddr = "127.0.0.1:7070"

// HistoryFileName is the REPL history file, relative to the home directory.
const HistoryFileName = ".calcx_history"

// HasSourceExt reports whether path ends in SourceFileExt.
func HasSourceExt(path string) bool {
	return strings.HasSuffix(path, SourceFileExt)
}
