package config

import (
	"io"

	"github.com/spf13/pflag"
)

// Flag names shared between the parser and the viper bindings.
const (
	FlagVersion      = "version"
	FlagLogLevel     = "log-level"
	FlagStorage      = "storage"
	FlagPrint        = "print"
	FlagPlain        = "plain"
	FlagSearch       = "search"
	FlagResetCorrupt = "reset-corrupt"
)

// Flags holds the parsed command line.
type Flags struct {
	Version      bool
	Print        bool
	Plain        bool
	Search       string
	ResetCorrupt bool

	set *pflag.FlagSet
}

// ParseFlags parses the command line (without the program name).
// Returns pflag.ErrHelp when -h/--help is given.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := pflag.NewFlagSet("todos", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVarP(&f.Version, FlagVersion, "v", false, "Print version information and exit")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagStorage, "", "Path of the storage file")
	fs.BoolVar(&f.Print, FlagPrint, false, "Print the task list and exit")
	fs.BoolVar(&f.Plain, FlagPlain, false, "With --print, output raw markdown")
	fs.StringVar(&f.Search, FlagSearch, "", "With --print, only tasks containing this text")
	fs.BoolVar(&f.ResetCorrupt, FlagResetCorrupt, false, "Back up an unreadable task list and start empty")

	f.set = fs
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	return f, nil
}

// FlagSet returns the underlying flag set for viper binding.
func (f *Flags) FlagSet() *pflag.FlagSet {
	return f.set
}

// Usage returns the formatted flag help.
func (f *Flags) Usage() string {
	return "Usage: todos [flags]\n\n" + f.set.FlagUsages()
}
