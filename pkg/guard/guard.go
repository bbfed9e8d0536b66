// Package guard keeps the terminal covered by a "too small" overlay
// while it is smaller than the configured minimum size.
package guard

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/containerd/errdefs"
	"golang.org/x/sync/errgroup"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
	"github.com/launchrctl/sizeguard/pkg/canvas"
	"github.com/launchrctl/sizeguard/pkg/policy"
)

// LabelActive is the label of the shared flag published while the guard owns the screen.
const LabelActive = "!ccanvas-saver-ison"

// DefaultPriority is the priority of the resize subscription and the suppression.
const DefaultPriority uint32 = 10

// releaseTimeout limits the lock release on shutdown.
const releaseTimeout = 5 * time.Second

// lockState is either unlocked or locked with a suppressor token.
// It is the only place the token lives.
type lockState struct {
	token  canvas.Suppressor
	locked bool
}

func unlocked() lockState                       { return lockState{} }
func lockedWith(s canvas.Suppressor) lockState { return lockState{token: s, locked: true} }

// Option configures a [Reconciler].
type Option func(r *Reconciler)

// WithPriority sets the priority of the resize subscription and the suppression.
func WithPriority(p uint32) Option {
	return func(r *Reconciler) { r.priority = p }
}

// WithDiscriminator sets the scope of the shared values and the suppression.
func WithDiscriminator(d canvas.Discriminator) Option {
	return func(r *Reconciler) { r.discrim = d }
}

// Reconciler owns the terminal size, the minimum size policy and the render lock.
// It processes one event at a time and is not safe for concurrent use.
type Reconciler struct {
	client   canvas.Client
	priority uint32
	discrim  canvas.Discriminator

	term   TerminalSize
	policy *policy.Store
	lock   lockState
}

// New creates a reconciler on the host client.
func New(client canvas.Client, opts ...Option) *Reconciler {
	r := &Reconciler{
		client:   client,
		priority: DefaultPriority,
		discrim:  canvas.Master(),
		policy:   policy.NewStore(),
		lock:     unlocked(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Locked checks if the guard currently owns the screen.
func (r *Reconciler) Locked() bool {
	return r.lock.locked
}

// Terminal returns the last known terminal size.
func (r *Reconciler) Terminal() TerminalSize {
	return r.term
}

// MinimumSize returns the current policy.
func (r *Reconciler) MinimumSize() policy.MinimumSize {
	return r.policy.Current()
}

// Start reads the initial state, subscribes to changes and reconciles once.
func (r *Reconciler) Start(ctx context.Context) error {
	var (
		raw    []byte
		getErr error
		term   TerminalSize
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Any read failure means there is no policy.
		raw, getErr = r.client.Get(gctx, policy.LabelDimensions, r.discrim)
		return nil
	})
	g.Go(func() (err error) {
		term.Width, term.Height, err = r.client.TermSize(gctx)
		return err
	})
	g.Go(func() error {
		return r.client.Watch(gctx, policy.LabelDimensions, r.discrim)
	})
	g.Go(func() error {
		return r.client.Subscribe(gctx, canvas.SubscribeScreenResize.WithPriority(r.priority))
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("guard start: %w", err)
	}

	r.policy.InitialLoad(raw, getErr)
	r.term = term
	sizeguard.Log().Debug("guard started", "terminal", r.term, "minimum", r.policy.Current())
	return r.reconcile(ctx)
}

// Run starts the guard and processes events until the context is cancelled
// or the host fails. A held lock is released on cancellation.
func (r *Reconciler) Run(ctx context.Context) error {
	if err := r.Start(ctx); err != nil {
		return r.stop(ctx, err)
	}
	for {
		ev, err := r.client.Recv(ctx)
		if err != nil {
			return r.stop(ctx, err)
		}
		if err = r.Handle(ctx, ev); err != nil {
			return r.stop(ctx, err)
		}
	}
}

func (r *Reconciler) stop(ctx context.Context, cause error) error {
	if ctx.Err() == nil {
		return cause
	}
	if !r.lock.locked {
		return nil
	}
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	return r.release(rctx)
}

// Handle processes an event. Resizes are handled exclusively while the guard is locked,
// all other events are passed on.
func (r *Reconciler) Handle(ctx context.Context, ev *canvas.Event) error {
	propagate := true
	defer func() { ev.Done(propagate) }()

	switch v := ev.Variant().(type) {
	case canvas.ResizeEvent:
		r.term = TerminalSize{Width: v.Width, Height: v.Height}
		err := r.reconcile(ctx)
		propagate = !r.lock.locked
		return err
	case canvas.ValueUpdatedEvent:
		if !r.isPolicy(v.Label, v.Discrim) {
			return nil
		}
		if !r.policy.ApplyUpdate(v.New) {
			return nil
		}
		return r.reconcile(ctx)
	case canvas.ValueRemovedEvent:
		if !r.isPolicy(v.Label, v.Discrim) {
			return nil
		}
		r.policy.ApplyRemoval()
		return r.reconcile(ctx)
	default:
		return nil
	}
}

func (r *Reconciler) isPolicy(label string, d canvas.Discriminator) bool {
	return label == policy.LabelDimensions && slices.Equal(d, r.discrim)
}

// reconcile brings the lock and the overlay in line with the current sizes.
func (r *Reconciler) reconcile(ctx context.Context) error {
	minSize := r.policy.Current()
	violates := minSize.Violated(r.term.Width, r.term.Height)
	switch {
	case violates && !r.lock.locked:
		sizeguard.Log().Info("terminal is too small, taking over the screen", "terminal", r.term, "minimum", minSize)
		return r.acquireAndDraw(ctx)
	case violates:
		return r.draw(ctx)
	case r.lock.locked:
		sizeguard.Log().Info("terminal is large enough, releasing the screen", "terminal", r.term, "minimum", minSize)
		return r.release(ctx)
	default:
		return nil
	}
}

// plot clears the canvas and plots the overlay.
func (r *Reconciler) plot() {
	r.client.ClearAll()
	for _, g := range Layout(r.term, r.policy.Current()) {
		if g.Coloured {
			r.client.SetCharColoured(g.X, g.Y, g.Char, g.Fg, g.Bg)
		} else {
			r.client.SetChar(g.X, g.Y, g.Char)
		}
	}
}

func (r *Reconciler) draw(ctx context.Context) error {
	r.plot()
	return r.client.RenderAll(ctx)
}

// acquireAndDraw suppresses other clients, publishes the flag and renders the overlay at once.
func (r *Reconciler) acquireAndDraw(ctx context.Context) error {
	r.plot()

	var (
		token       canvas.Suppressor
		suppressErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		token, suppressErr = r.client.Suppress(gctx, canvas.SubscribeEverything.WithPriority(r.priority), r.priority, r.discrim)
		return suppressErr
	})
	g.Go(func() error {
		return r.client.Set(gctx, LabelActive, r.discrim, true)
	})
	g.Go(func() error {
		return r.client.RenderAll(gctx)
	})
	err := g.Wait()
	if suppressErr == nil {
		// Keep the token even if other operations failed, so it can be released.
		r.lock = lockedWith(token)
	} else {
		// The flag follows the lock, the screen is not taken.
		if ferr := r.client.Set(context.WithoutCancel(ctx), LabelActive, r.discrim, false); ferr != nil {
			sizeguard.Log().Warn("failed to reset the guard flag", "error", ferr)
		}
	}
	if err != nil {
		return fmt.Errorf("guard lock: %w", err)
	}
	return nil
}

// release gives the screen back and publishes the flag at once.
func (r *Reconciler) release(ctx context.Context) error {
	token := r.lock.token
	var unsuppressErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		unsuppressErr = r.client.Unsuppress(gctx, token)
		if errdefs.IsNotFound(unsuppressErr) {
			// The host doesn't hold the suppression anymore.
			sizeguard.Log().Warn("suppression is already released", "error", unsuppressErr)
			unsuppressErr = nil
		}
		return unsuppressErr
	})
	g.Go(func() error {
		return r.client.Set(gctx, LabelActive, r.discrim, false)
	})
	err := g.Wait()
	if unsuppressErr == nil {
		r.lock = unlocked()
	}
	if err != nil {
		return fmt.Errorf("guard unlock: %w", err)
	}
	return nil
}
