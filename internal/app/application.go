package app

import (
	"fmt"
	"runtime"

	"shared-data/internal/config"
	"shared-data/internal/controllers"
	"shared-data/internal/gui"
	"shared-data/internal/logger"
	"shared-data/internal/shutdown"
	"shared-data/internal/store"
	"shared-data/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Shared Data App"
	AppID      = "com.example.shareddata"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *config.Config
	logger  logger.Logger

	store        *store.Store
	presenter    *gui.Presenter
	controller   *controllers.ViewController
	editView     *views.EditView
	viewOnlyView *views.ViewOnlyView

	lifecycle   *Lifecycle
	shutdownMgr *shutdown.Manager
}

// NewApplication loads the stored record and builds the window. A stored
// document that cannot be parsed aborts startup.
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"data_file":  cfg.DataFile,
		"go_version": runtime.Version(),
	})

	recordStore := store.New(cfg.DataFile, log)
	record, err := recordStore.Load()
	if err != nil {
		log.Error("Application", err, map[string]interface{}{
			"stage": "load",
		})
		return nil, fmt.Errorf("load shared data: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	presenter := gui.NewPresenter(window, log)
	controller := controllers.NewViewController(record, recordStore, presenter, log)

	// views read the record at construction, so they come after the controller
	editView := views.NewEditView(controller)
	viewOnlyView := views.NewViewOnlyView(controller)
	for _, view := range []controllers.View{editView, viewOnlyView} {
		if err := controller.RegisterView(view); err != nil {
			return nil, err
		}
	}

	application := &Application{
		fyneApp:      fyneApp,
		window:       window,
		config:       cfg,
		logger:       log,
		store:        recordStore,
		presenter:    presenter,
		controller:   controller,
		editView:     editView,
		viewOnlyView: viewOnlyView,
		lifecycle:    NewLifecycle(controller, log),
		shutdownMgr:  shutdown.NewManager(log),
	}

	window.SetContent(presenter.Container())
	application.setupMenus()
	application.setupWindowEvents()

	if err := controller.Activate(views.EditViewName); err != nil {
		return nil, err
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"views": controller.Views(),
	})
	return application, nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.requestClose)
}

// requestClose persists the record before the window goes away.
func (a *Application) requestClose() {
	a.logger.Info("Application", "shutdown requested", nil)
	a.lifecycle.Shutdown()
	a.window.Close()
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	a.shutdownMgr.Register(shutdown.Func(func() {
		fyne.Do(func() {
			a.lifecycle.Shutdown()
			a.fyneApp.Quit()
		})
	}))
	a.shutdownMgr.Listen()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	// quitting from the menu skips the close intercept
	a.lifecycle.Shutdown()
	return a.lifecycle.Err()
}
