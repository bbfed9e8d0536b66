package sizeguard

import (
	"errors"
	"os"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
	_ "github.com/launchrctl/sizeguard/plugins" // include default plugins
)

type appImpl struct {
	// Cli related.
	cmd      *Command
	earlyCmd sizeguard.CmdEarlyParsed

	// FS related.
	cfgDir string

	// Services.
	streams    Streams
	services   *sizeguard.ServiceManager
	pluginMngr PluginManager
}

func newApp() *appImpl {
	return &appImpl{}
}

func (app *appImpl) Name() string         { return name }
func (app *appImpl) Streams() Streams     { return app.streams }
func (app *appImpl) SetStreams(s Streams) { app.streams = s }

func (app *appImpl) RootCmd() *Command                        { return app.cmd }
func (app *appImpl) CmdEarlyParsed() sizeguard.CmdEarlyParsed { return app.earlyCmd }

func (app *appImpl) AddService(s Service) { app.services.Add(s) }
func (app *appImpl) GetService(v any)     { app.services.Get(v) }

// init initializes application and plugins.
func (app *appImpl) init() error {
	var err error
	// Set root command.
	app.cmd = &Command{
		Use:           name,
		Short:         "Terminal size guard",
		Long:          "Covers the terminal with a notice while it is smaller than the configured minimum size.",
		SilenceErrors: true, // Handled manually.
		Version:       version,
		RunE: func(cmd *Command, _ []string) error {
			return cmd.Help()
		},
	}
	app.earlyCmd = sizeguard.EarlyPeekCommand()
	// Set io streams.
	app.SetStreams(StandardStreams())
	app.cmd.SetIn(app.streams.In())
	app.cmd.SetOut(app.streams.Out())
	app.cmd.SetErr(app.streams.Err())

	// Set config dir.
	app.cfgDir = EnvVarConfigDir.Get()
	if app.cfgDir == "" {
		app.cfgDir = "." + name
	}
	app.cfgDir = MustAbs(app.cfgDir)

	// Prepare dependencies.
	app.services = sizeguard.NewServiceManager()
	app.pluginMngr = sizeguard.NewPluginManagerWithRegistered()
	config := sizeguard.ConfigFromFS(os.DirFS(app.cfgDir), app.cfgDir)

	// Register services for other modules.
	app.AddService(app.pluginMngr)
	app.AddService(config)

	// Run OnAppInit hook.
	for _, p := range sizeguard.GetPluginByType[OnAppInitPlugin](app.pluginMngr) {
		if err = p.V.OnAppInit(app); err != nil {
			return err
		}
	}

	return nil
}

func (app *appImpl) exec() error {
	if app.earlyCmd.IsVersion {
		app.cmd.SetVersionTemplate(Version().Full())
		return app.cmd.Execute()
	}

	// Add application commands from plugins.
	for _, p := range sizeguard.GetPluginByType[CobraPlugin](app.pluginMngr) {
		if err := p.V.CobraAddCommands(app.cmd); err != nil {
			return err
		}
	}

	return app.cmd.Execute()
}

// Execute is an entrypoint to the sizeguard app.
func (app *appImpl) Execute() int {
	var err error
	defer func() {
		if cerr := sizeguard.Cleanup(); cerr != nil {
			Log().Warn("cleanup failed", "error", cerr)
		}
	}()
	if err = app.init(); err != nil {
		Term().Error().Println(err)
		return 125
	}
	if err = app.exec(); err != nil {
		var status int
		var errExit ExitError

		switch {
		case errors.As(err, &errExit):
			status = errExit.ExitCode()
		default:
			status = 1
		}
		msg := err.Error()
		if msg != "" {
			Term().Error().Println(err)
		}

		return status
	}

	return 0
}

// Run executes the application.
func Run() int {
	return newApp().Execute()
}

// RunAndExit runs the application and exits with a result code.
func RunAndExit() {
	os.Exit(Run())
}
