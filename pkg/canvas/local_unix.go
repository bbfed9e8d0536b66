//go:build unix

package canvas

import (
	"os"
	gosignal "os/signal"

	"github.com/moby/sys/signal"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// watchTtySize calls resizeFn with the new size every time the terminal is resized.
func watchTtySize(out *sizeguard.Out, resizeFn func(width, height uint32)) (stop func()) {
	sigchan := make(chan os.Signal, 1)
	gosignal.Notify(sigchan, signal.SIGWINCH)
	go func() {
		for range sigchan {
			w, h := out.GetTtySize()
			resizeFn(uint32(w), uint32(h))
		}
	}()
	return func() {
		gosignal.Stop(sigchan)
		close(sigchan)
	}
}
