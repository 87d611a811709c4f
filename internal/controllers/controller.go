package controllers

import (
	"fmt"

	"shared-data/internal/logger"
	"shared-data/internal/models"

	"fyne.io/fyne/v2"
)

const (
	SaveNotificationTitle   = "Notification"
	SaveNotificationMessage = "Data saved successfully!"
	saveErrorTitle          = "Save Failed"
)

// View is one selectable screen.
type View interface {
	Name() string
	Content() fyne.CanvasObject
	// OnActivate runs just before the view is raised.
	OnActivate()
}

// Presenter is the part of the windowing layer the controller drives.
type Presenter interface {
	Register(name string, content fyne.CanvasObject)
	Show(name string)
	Notify(title, message string)
	ShowError(title string, err error)
	Release()
}

// RecordStore persists the shared record.
type RecordStore interface {
	Save(record models.Record) error
}

// ViewController owns the shared Record and decides which registered view is
// visible. Views receive it at construction and never reference each other.
// All methods are expected to run on the UI goroutine.
type ViewController struct {
	store     RecordStore
	presenter Presenter
	logger    logger.Logger

	record models.Record
	views  map[string]View
	order  []string
	active string

	isShutdown bool
}

func NewViewController(record models.Record, store RecordStore, presenter Presenter, log logger.Logger) *ViewController {
	if record == nil {
		record = models.NewRecord()
	}
	record.Normalize()
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &ViewController{
		store:     store,
		presenter: presenter,
		logger:    log,
		record:    record,
		views:     make(map[string]View),
	}
}

// RegisterView makes a view selectable by its name.
func (c *ViewController) RegisterView(view View) error {
	name := view.Name()
	if _, exists := c.views[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateView)
	}

	c.views[name] = view
	c.order = append(c.order, name)
	c.presenter.Register(name, view.Content())

	c.logger.Debug("ViewController", "view registered", map[string]interface{}{
		"view": name,
	})
	return nil
}

// Activate makes name the only visible view and lets it refresh first.
// An unregistered name leaves the current view in place.
func (c *ViewController) Activate(name string) error {
	view, ok := c.views[name]
	if !ok {
		err := &UnknownViewError{Name: name}
		c.logger.Error("ViewController", err, map[string]interface{}{
			"active": c.active,
		})
		return err
	}

	previous := c.active
	c.active = name
	view.OnActivate()
	c.presenter.Show(name)

	c.logger.Debug("ViewController", "view activated", map[string]interface{}{
		"from": previous,
		"to":   name,
	})
	return nil
}

// Active returns the visible view's name, "" before the first activation.
func (c *ViewController) Active() string {
	return c.active
}

func (c *ViewController) IsActive(name string) bool {
	return c.active != "" && c.active == name
}

// Views returns registered names in registration order.
func (c *ViewController) Views() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *ViewController) GetField(name string) string {
	return c.record.Get(name)
}

// SetField changes the in-memory record only; see Persist.
func (c *ViewController) SetField(name, value string) error {
	return c.record.Set(name, value)
}

// Record returns a copy of the shared record.
func (c *ViewController) Record() models.Record {
	return c.record.Clone()
}

// Persist writes the current record to the store.
func (c *ViewController) Persist() error {
	if err := c.store.Save(c.record.Clone()); err != nil {
		c.logger.Error("ViewController", err, map[string]interface{}{
			"operation": "persist",
		})
		return err
	}
	return nil
}

// Save applies values to the record, persists it and tells the user how it
// went. Unknown field names are rejected before anything changes.
func (c *ViewController) Save(values map[string]string) error {
	for name := range values {
		if !models.IsField(name) {
			return fmt.Errorf("save %q: %w", name, models.ErrUnknownField)
		}
	}
	for name, value := range values {
		c.record[name] = value
	}

	if err := c.Persist(); err != nil {
		c.presenter.ShowError(saveErrorTitle, err)
		return err
	}

	c.logger.Info("ViewController", "record saved", map[string]interface{}{
		"fields": len(values),
	})
	c.presenter.Notify(SaveNotificationTitle, SaveNotificationMessage)
	return nil
}

// Shutdown persists the record and releases the presentation layer.
// Only the first call does any work.
func (c *ViewController) Shutdown() error {
	if c.isShutdown {
		return nil
	}
	c.isShutdown = true

	c.logger.Info("ViewController", "shutdown initiated", nil)
	err := c.Persist()
	c.presenter.Release()
	return err
}
