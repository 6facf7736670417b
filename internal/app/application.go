package app

import (
	"context"
	"io"
	"runtime"

	"bin-tally/internal/config"
	"bin-tally/internal/console"
	"bin-tally/internal/controllers"
	"bin-tally/internal/inventory"
	"bin-tally/internal/logger"
	"bin-tally/internal/storage"
	"bin-tally/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"
)

const (
	AppName    = "Bin Tally"
	AppID      = "com.inventory.bintally"
	AppVersion = "1.0.0"
)

// Core is the display-independent part of the application shared by the
// window and the console collector.
type Core struct {
	Config     *config.Config
	Logger     logger.Logger
	Writer     *storage.CSVWriter
	Session    *inventory.Session
	Controller *controllers.MainController
	Lifecycle  *Lifecycle
}

func NewCore(cfg *config.Config, log logger.Logger, fs afero.Fs) *Core {
	writer := storage.NewCSVWriter(fs, cfg.Output.Dir, cfg.Output.Extension, log)
	session := inventory.NewSession(writer)
	controller := controllers.NewMainController(session, log, cfg.Session.FlushOnExit)

	lifecycle := NewLifecycle(log)
	lifecycle.Register(controller)

	return &Core{
		Config:     cfg,
		Logger:     log,
		Writer:     writer,
		Session:    session,
		Controller: controller,
		Lifecycle:  lifecycle,
	}
}

// Application is the Fyne front end
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	view    *views.MainView
	core    *Core
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"output_dir": cfg.Output.Dir,
		"extension":  cfg.Output.Extension,
	})

	core := NewCore(cfg, log, afero.NewOsFs())
	view := views.NewMainView(window)

	application := &Application{
		fyneApp: fyneApp,
		window:  window,
		view:    view,
		core:    core,
	}

	NewHandlers(core.Controller, view).Wire()
	core.Controller.SetView(view)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Run() error {
	log := a.core.Logger

	a.core.Lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetCloseIntercept(func() {
		log.Info("Application", "shutdown requested", nil)
		a.core.Lifecycle.Shutdown()
		a.window.Close()
	})

	a.view.Show()
	log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	// Quit from the OS menu bypasses the close intercept.
	a.core.Lifecycle.Shutdown()
	return nil
}

// RunConsole runs the line-mode collector until EOF, :quit, ctx
// cancellation or a signal. The collector and the exit flush both run on
// the calling goroutine.
func RunConsole(ctx context.Context, cfg *config.Config, log logger.Logger, in io.Reader, out io.Writer) error {
	core := NewCore(cfg, log, afero.NewOsFs())
	defer core.Lifecycle.Shutdown()

	core.Lifecycle.Listen(nil)
	return runCollector(ctx, core, in, out)
}

func runCollector(ctx context.Context, core *Core, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(core.Lifecycle.Context(), cancel)
	defer stop()

	core.Logger.Info("Console", "console collector started", map[string]interface{}{
		"version":    AppVersion,
		"output_dir": core.Config.Output.Dir,
	})

	collector := console.NewCollector(core.Controller, in, out, core.Logger)
	return collector.Run(ctx)
}
