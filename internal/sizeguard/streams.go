package sizeguard

import (
	"io"
	"strings"

	mobyterm "github.com/moby/term"
)

// Streams is an interface which exposes the standard input and output streams.
type Streams interface {
	// In returns the reader used for stdin.
	In() *In
	// Out returns the writer used for stdout.
	Out() *Out
	// Err returns the writer used for stderr.
	Err() io.Writer
}

type commonStream struct {
	fd         uintptr
	isTerminal bool
	state      *mobyterm.State
}

// FD returns the file descriptor number for this stream.
func (s *commonStream) FD() uintptr {
	return s.fd
}

// IsTerminal returns true if this stream is connected to a terminal.
func (s *commonStream) IsTerminal() bool {
	return s.isTerminal
}

// RestoreTerminal restores the terminal state saved before it was altered.
func (s *commonStream) RestoreTerminal() {
	if s.state != nil {
		_ = mobyterm.RestoreTerminal(s.fd, s.state)
		s.state = nil
	}
}

// Out is an output stream used by the app to write normal program output.
type Out struct {
	commonStream
	out io.Writer
}

func (o *Out) Write(p []byte) (int, error) {
	return o.out.Write(p)
}

// GetTtySize returns the width and height in characters of the tty.
// Zero size is returned when the stream is not a terminal.
func (o *Out) GetTtySize() (width uint, height uint) {
	if !o.isTerminal {
		return 0, 0
	}
	ws, err := mobyterm.GetWinsize(o.fd)
	if err != nil {
		Log().Debug("error getting tty size", "error", err)
		if ws == nil {
			return 0, 0
		}
	}
	return uint(ws.Width), uint(ws.Height)
}

// NewOut returns a new [Out] object from a [io.Writer].
func NewOut(out io.Writer) *Out {
	fd, isTerminal := mobyterm.GetFdInfo(out)
	return &Out{commonStream: commonStream{fd: fd, isTerminal: isTerminal}, out: out}
}

// In is an input stream used by the app to read user input.
type In struct {
	commonStream
	in io.ReadCloser
}

func (i *In) Read(p []byte) (int, error) {
	return i.in.Read(p)
}

// Close implements the [io.Closer] interface.
func (i *In) Close() error {
	return i.in.Close()
}

// DisableEcho stops the terminal from echoing typed keys over the screen.
// Use [In.RestoreTerminal] to revert it.
func (i *In) DisableEcho() (err error) {
	if !i.isTerminal || i.state != nil {
		return nil
	}
	state, err := mobyterm.SaveState(i.fd)
	if err != nil {
		return err
	}
	if err = mobyterm.DisableEcho(i.fd, state); err != nil {
		return err
	}
	i.state = state
	return nil
}

// NewIn returns a new [In] object from a [io.ReadCloser]
func NewIn(in io.ReadCloser) *In {
	fd, isTerminal := mobyterm.GetFdInfo(in)
	return &In{commonStream: commonStream{fd: fd, isTerminal: isTerminal}, in: in}
}

type appCli struct {
	in  *In
	out *Out
	err io.Writer
}

func (cli *appCli) In() *In        { return cli.in }
func (cli *appCli) Out() *Out      { return cli.out }
func (cli *appCli) Err() io.Writer { return cli.err }

// StandardStreams sets a cli in, out and err streams with the standard streams.
func StandardStreams() Streams {
	// Set terminal emulation based on platform as required.
	stdin, stdout, stderr := mobyterm.StdStreams()
	return NewBasicStreams(stdin, stdout, stderr)
}

// NewBasicStreams creates streams with given in, out and err streams.
func NewBasicStreams(in io.ReadCloser, out io.Writer, err io.Writer) Streams {
	return &appCli{
		in:  NewIn(in),
		out: NewOut(out),
		err: err,
	}
}

// NoopStreams provides streams like /dev/null.
func NoopStreams() Streams {
	return NewBasicStreams(io.NopCloser(strings.NewReader("")), io.Discard, io.Discard)
}
