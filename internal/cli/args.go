package cli

import (
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
)

// Parses args using go-arg and returns a boolean value indicating if the
// parse consumed the invocation. This usually happens when the client is
// requesting usage information.
func ParseArgs(stdout, stderr io.Writer, name string, args []string, destination any) (retcode int, consumed bool) {
	parser, err := arg.NewParser(arg.Config{Program: name}, destination)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err.Error())
		return 1, true
	}

	// Borrowed from MustParse.
	err = parser.Parse(args)
	switch err {
	case nil:
		return 0, false

	case arg.ErrHelp:
		parser.WriteHelpForSubcommand(stdout, parser.SubcommandNames()...)
		return 0, true

	case arg.ErrVersion:
		fmt.Fprintln(stdout, "unknown")
		return 0, true

	default:
		parser.WriteUsageForSubcommand(stdout, parser.SubcommandNames()...)
		fmt.Fprintln(stderr, "error:", err.Error())
		return 255, true
	}
}
