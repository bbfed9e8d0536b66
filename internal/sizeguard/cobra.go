package sizeguard

import (
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// EarlyPeekCommand parses the os arguments before cobra runs.
// Unknown flags are ignored, they belong to the commands.
func EarlyPeekCommand() CmdEarlyParsed {
	return earlyPeek(os.Args[1:])
}

func earlyPeek(args []string) CmdEarlyParsed {
	fs := flag.NewFlagSet("early", flag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	isVersion := fs.Bool("version", false, "")
	fs.BoolP("help", "h", false, "")
	_ = fs.Parse(args)
	return CmdEarlyParsed{
		Args:      args,
		IsVersion: *isVersion && fs.NArg() == 0,
	}
}
