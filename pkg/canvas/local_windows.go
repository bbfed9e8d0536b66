//go:build windows

package canvas

import (
	"time"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// watchTtySize polls the terminal size as there is no resize signal on Windows.
func watchTtySize(out *sizeguard.Out, resizeFn func(width, height uint32)) (stop func()) {
	done := make(chan struct{})
	go func() {
		prevW, prevH := out.GetTtySize()
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			w, h := out.GetTtySize()
			if w != prevW || h != prevH {
				resizeFn(uint32(w), uint32(h))
			}
			prevW, prevH = w, h
		}
	}()
	return func() { close(done) }
}
