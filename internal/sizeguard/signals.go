package sizeguard

import (
	"context"
	"os"
	gosignal "os/signal"

	"github.com/moby/sys/signal"
)

// NotifySignals starts watching the given signals.
func NotifySignals(sig ...os.Signal) chan os.Signal {
	sigc := make(chan os.Signal, 128)
	gosignal.Notify(sigc, sig...)
	return sigc
}

// StopCatchSignals stops catching the signals and closes the specified channel.
func StopCatchSignals(sigc chan os.Signal) {
	gosignal.Stop(sigc)
	close(sigc)
}

// SignalName returns a short signal name like "INT", or an empty string if unknown.
func SignalName(s os.Signal) string {
	for name, sigN := range signal.SignalMap {
		if sigN == s {
			return name
		}
	}
	return ""
}

func stopSignals() []os.Signal {
	res := make([]os.Signal, 0, 2)
	for _, raw := range []string{"INT", "TERM"} {
		s, err := signal.ParseSignal(raw)
		if err != nil {
			Log().Debug("stop signal is not supported", "sig", raw, "error", err)
			continue
		}
		res = append(res, s)
	}
	return res
}

// WithStopSignals returns a copy of ctx which is cancelled on interrupt or termination.
// The returned cancel function must be called to stop catching the signals.
func WithStopSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	sigc := NotifySignals(stopSignals()...)
	go func() {
		select {
		case s, ok := <-sigc:
			if ok {
				Log().Info("stopping on signal", "sig", SignalName(s))
				cancel()
			}
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		cancel()
		StopCatchSignals(sigc)
	}
}
