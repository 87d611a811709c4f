package gui

import (
	"shared-data/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// Presenter stacks every registered page in one container and keeps exactly
// one of them visible.
type Presenter struct {
	window fyne.Window
	logger logger.Logger

	stack   *fyne.Container
	pages   map[string]fyne.CanvasObject
	current string

	isReleased bool
}

func NewPresenter(window fyne.Window, log logger.Logger) *Presenter {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Presenter{
		window: window,
		logger: log,
		stack:  container.NewStack(),
		pages:  make(map[string]fyne.CanvasObject),
	}
}

// Container is the window content holding all pages.
func (p *Presenter) Container() *fyne.Container {
	return p.stack
}

func (p *Presenter) Register(name string, content fyne.CanvasObject) {
	content.Hide()
	p.pages[name] = content
	p.stack.Add(content)
}

// Show raises the named page and hides the rest.
func (p *Presenter) Show(name string) {
	if _, ok := p.pages[name]; !ok {
		p.logger.Warning("Presenter", "show requested for unregistered page", map[string]interface{}{
			"page": name,
		})
		return
	}

	for pageName, page := range p.pages {
		if pageName == name {
			page.Show()
		} else {
			page.Hide()
		}
	}
	p.current = name
	p.stack.Refresh()
}

// Current returns the visible page's name.
func (p *Presenter) Current() string {
	return p.current
}

func (p *Presenter) Notify(title, message string) {
	dialog.ShowInformation(title, message, p.window)
}

func (p *Presenter) ShowError(title string, err error) {
	p.logger.Error("Presenter", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, p.window)
}

// Release drops every page from the window.
func (p *Presenter) Release() {
	if p.isReleased {
		return
	}
	p.isReleased = true

	p.stack.RemoveAll()
	p.pages = make(map[string]fyne.CanvasObject)
	p.current = ""
	p.logger.Info("Presenter", "presentation released", nil)
}
