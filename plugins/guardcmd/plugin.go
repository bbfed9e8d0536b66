// Package guardcmd is a plugin of sizeguard providing commands to run the guard
// and to manage the minimum terminal size.
package guardcmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/containerd/errdefs"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
	"github.com/launchrctl/sizeguard/pkg/canvas"
	"github.com/launchrctl/sizeguard/pkg/guard"
	"github.com/launchrctl/sizeguard/pkg/policy"
)

func init() {
	sizeguard.RegisterPlugin(&Plugin{})
}

// Plugin is [sizeguard.Plugin] providing the guard commands.
type Plugin struct {
	app sizeguard.App
	cfg sizeguard.Config
}

// PluginInfo implements [sizeguard.Plugin] interface.
func (p *Plugin) PluginInfo() sizeguard.PluginInfo {
	return sizeguard.PluginInfo{}
}

// OnAppInit implements [sizeguard.OnAppInitPlugin] interface.
func (p *Plugin) OnAppInit(app sizeguard.App) error {
	p.app = app
	app.GetService(&p.cfg)
	return nil
}

// CobraAddCommands implements [sizeguard.CobraPlugin] interface to provide guard commands.
func (p *Plugin) CobraAddCommands(rootCmd *sizeguard.Command) error {
	rootCmd.AddCommand(p.runCmd(), p.minCmd(), p.statusCmd())
	return nil
}

func (p *Plugin) runCmd() *sizeguard.Command {
	var (
		driver string
		width  uint32
		height uint32
	)
	cmd := &sizeguard.Command{
		Use:   "run",
		Short: "Cover the terminal while it is smaller than the minimum size",
		Args:  sizeguard.NoArgs,
		RunE: func(cmd *sizeguard.Command, _ []string) error {
			// Don't show usage help on a runtime error.
			cmd.SilenceUsage = true
			hostCfg, err := p.cfg.Host()
			if err != nil {
				return fmt.Errorf("host config: %w", err)
			}
			guardCfg, err := p.cfg.Guard()
			if err != nil {
				return fmt.Errorf("guard config: %w", err)
			}
			if driver != "" {
				hostCfg.Driver = driver
			}
			store, err := p.store(hostCfg)
			if err != nil {
				return err
			}
			client, err := canvas.New(canvas.Type(hostCfg.Driver), canvas.Options{
				Streams: p.app.Streams(),
				Store:   store,
				Width:   width,
				Height:  height,
			})
			if err != nil {
				return err
			}
			sizeguard.RegisterCleanupFn(client.Close)

			ctx, stop := sizeguard.WithStopSignals(cmd.Context())
			defer stop()
			sizeguard.Log().Info("guard is running", "driver", hostCfg.Driver, "state", store.StateFile().Path())
			return guard.New(client, guard.WithPriority(guardCfg.Priority)).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "", "canvas host, local or headless (default from config)")
	cmd.Flags().Uint32Var(&width, "width", 80, "terminal width of the headless host")
	cmd.Flags().Uint32Var(&height, "height", 24, "terminal height of the headless host")
	return cmd
}

func (p *Plugin) minCmd() *sizeguard.Command {
	cmd := &sizeguard.Command{
		Use:   "min",
		Short: "Manage the minimum terminal size",
		Args:  sizeguard.NoArgs,
		RunE: func(cmd *sizeguard.Command, _ []string) error {
			return cmd.Help()
		},
	}
	setCmd := &sizeguard.Command{
		Use:   "set WIDTH HEIGHT",
		Short: "Set the minimum terminal size",
		Args:  sizeguard.ExactArgs(2),
		RunE: func(cmd *sizeguard.Command, args []string) error {
			minSize, err := parseMinimumSize(args[0], args[1])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			store, err := p.sharedStore()
			if err != nil {
				return err
			}
			if err = store.Set(policy.LabelDimensions, canvas.Master(), minSize); err != nil {
				return err
			}
			sizeguard.Term().Success().Printfln("Minimum terminal size is set to %s", minSize)
			return nil
		},
	}
	showCmd := &sizeguard.Command{
		Use:   "show",
		Short: "Show the minimum terminal size",
		Args:  sizeguard.NoArgs,
		RunE: func(cmd *sizeguard.Command, _ []string) error {
			cmd.SilenceUsage = true
			store, err := p.sharedStore()
			if err != nil {
				return err
			}
			minSize, err := readMinimumSize(store)
			if err != nil {
				sizeguard.Term().Warning().Printfln("Minimum terminal size is malformed: %s", err)
			}
			sizeguard.Term().Printfln("%s", minSize)
			return nil
		},
	}
	clearCmd := &sizeguard.Command{
		Use:   "clear",
		Short: "Remove the minimum terminal size",
		Args:  sizeguard.NoArgs,
		RunE: func(cmd *sizeguard.Command, _ []string) error {
			cmd.SilenceUsage = true
			store, err := p.sharedStore()
			if err != nil {
				return err
			}
			if err = store.Remove(policy.LabelDimensions, canvas.Master()); err != nil {
				return err
			}
			sizeguard.Term().Success().Println("Minimum terminal size is removed")
			return nil
		},
	}
	cmd.AddCommand(setCmd, showCmd, clearCmd)
	return cmd
}

func (p *Plugin) statusCmd() *sizeguard.Command {
	return &sizeguard.Command{
		Use:   "status",
		Short: "Show the minimum terminal size and if the guard covers the terminal",
		Args:  sizeguard.NoArgs,
		RunE: func(cmd *sizeguard.Command, _ []string) error {
			cmd.SilenceUsage = true
			store, err := p.sharedStore()
			if err != nil {
				return err
			}
			minSize, err := readMinimumSize(store)
			if err != nil {
				sizeguard.Term().Warning().Printfln("Minimum terminal size is malformed: %s", err)
			}
			active, err := readActive(store)
			if err != nil {
				return err
			}
			term := p.app.Streams().Out()
			sizeguard.Term().Printfln("Minimum size: %s", minSize)
			if term.IsTerminal() {
				w, h := term.GetTtySize()
				sizeguard.Term().Printfln("Terminal size: %dx%d", w, h)
			}
			sizeguard.Term().Printfln("Guard active: %t", active)
			return nil
		},
	}
}

func (p *Plugin) store(hostCfg sizeguard.HostConfig) (*canvas.Store, error) {
	state := canvas.NewStateFile(p.cfg.Path(hostCfg.StateFile))
	if err := sizeguard.EnsurePath(p.cfg.DirPath()); err != nil {
		return nil, err
	}
	return canvas.NewStore(state)
}

// sharedStore opens the store shared with a running guard.
func (p *Plugin) sharedStore() (*canvas.Store, error) {
	hostCfg, err := p.cfg.Host()
	if err != nil {
		return nil, fmt.Errorf("host config: %w", err)
	}
	return p.store(hostCfg)
}

func parseMinimumSize(width, height string) (policy.MinimumSize, error) {
	w, err := strconv.ParseUint(width, 10, 32)
	if err != nil {
		return policy.Default(), fmt.Errorf("invalid width %q: %w", width, errdefs.ErrInvalidArgument)
	}
	h, err := strconv.ParseUint(height, 10, 32)
	if err != nil {
		return policy.Default(), fmt.Errorf("invalid height %q: %w", height, errdefs.ErrInvalidArgument)
	}
	return policy.MinimumSize{Width: uint32(w), Height: uint32(h)}, nil
}

// readMinimumSize returns the stored minimum size, the default one if it is absent or malformed.
func readMinimumSize(store *canvas.Store) (policy.MinimumSize, error) {
	raw, err := store.Get(policy.LabelDimensions, canvas.Master())
	if errdefs.IsNotFound(err) {
		return policy.Default(), nil
	}
	if err != nil {
		return policy.Default(), err
	}
	return policy.Decode(raw)
}

func readActive(store *canvas.Store) (bool, error) {
	raw, err := store.Get(guard.LabelActive, canvas.Master())
	if errdefs.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var active bool
	if err = json.Unmarshal(raw, &active); err != nil {
		return false, fmt.Errorf("guard flag is malformed: %w", err)
	}
	return active, nil
}
