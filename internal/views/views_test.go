package views

import (
	"errors"
	"path/filepath"
	"testing"

	"shared-data/internal/controllers"
	"shared-data/internal/models"
	"shared-data/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPresenter struct {
	shown         []string
	notifications int
	errors        []error
}

func (p *recordingPresenter) Register(name string, content fyne.CanvasObject) {}
func (p *recordingPresenter) Show(name string)                              { p.shown = append(p.shown, name) }
func (p *recordingPresenter) Notify(title, message string)                  { p.notifications++ }
func (p *recordingPresenter) ShowError(title string, err error)             { p.errors = append(p.errors, err) }
func (p *recordingPresenter) Release()                                      {}

type harness struct {
	controller *controllers.ViewController
	presenter  *recordingPresenter
	store      *store.Store
	edit       *EditView
	viewOnly   *ViewOnlyView
}

func newHarness(t *testing.T, record models.Record) *harness {
	t.Helper()
	test.NewTempApp(t)

	h := &harness{
		presenter: &recordingPresenter{},
		store:     store.New(filepath.Join(t.TempDir(), "data.json"), nil),
	}
	h.controller = controllers.NewViewController(record, h.store, h.presenter, nil)
	h.edit = NewEditView(h.controller)
	h.viewOnly = NewViewOnlyView(h.controller)
	require.NoError(t, h.controller.RegisterView(h.edit))
	require.NoError(t, h.controller.RegisterView(h.viewOnly))
	require.NoError(t, h.controller.Activate(EditViewName))
	return h
}

func TestEditViewStartsFromRecord(t *testing.T) {
	h := newHarness(t, models.Record{models.FieldA: "first", models.FieldB: "second"})

	a, b := h.edit.Values()
	assert.Equal(t, "first", a)
	assert.Equal(t, "second", b)
}

func TestEditViewBuffersUntilSave(t *testing.T) {
	h := newHarness(t, models.NewRecord())

	test.Type(h.edit.entryA, "typed")
	a, _ := h.edit.Values()
	assert.Equal(t, "typed", a)
	assert.Equal(t, "", h.controller.GetField(models.FieldA))
}

func TestEditSaveScenario(t *testing.T) {
	h := newHarness(t, models.NewRecord())

	h.edit.SetValues("hello", "world")
	test.Tap(h.edit.saveButton)

	want := models.Record{models.FieldA: "hello", models.FieldB: "world"}
	assert.Equal(t, want, h.controller.Record())

	stored, err := h.store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, stored)
	assert.Equal(t, 1, h.presenter.notifications)
}

func TestEditSaveFailureIsReported(t *testing.T) {
	test.NewTempApp(t)
	presenter := &recordingPresenter{}
	broken := store.New(filepath.Join(t.TempDir(), "missing", "data.json"), nil)
	c := controllers.NewViewController(nil, broken, presenter, nil)
	edit := NewEditView(c)

	edit.SetValues("hello", "world")
	err := edit.Save()

	var writeErr *store.WriteError
	assert.True(t, errors.As(err, &writeErr))
	assert.Equal(t, 0, presenter.notifications)
	assert.Len(t, presenter.errors, 1)
}

func TestViewOnlyRefreshesOnActivate(t *testing.T) {
	h := newHarness(t, models.Record{models.FieldA: "x", models.FieldB: "y"})

	require.NoError(t, h.controller.Activate(ViewOnlyViewName))
	a, b := h.viewOnly.Values()
	assert.Equal(t, "x", a)
	assert.Equal(t, "y", b)

	require.NoError(t, h.controller.SetField(models.FieldA, "z"))
	a, _ = h.viewOnly.Values()
	assert.Equal(t, "x", a, "labels only change on activation")

	require.NoError(t, h.controller.Activate(ViewOnlyViewName))
	a, b = h.viewOnly.Values()
	assert.Equal(t, "z", a)
	assert.Equal(t, "y", b)
}

func TestSwitchButtonsNavigate(t *testing.T) {
	h := newHarness(t, models.NewRecord())

	test.Tap(h.edit.switchButton)
	assert.Equal(t, ViewOnlyViewName, h.controller.Active())

	test.Tap(h.viewOnly.switchButton)
	assert.Equal(t, EditViewName, h.controller.Active())

	assert.Equal(t, []string{EditViewName, ViewOnlyViewName, EditViewName}, h.presenter.shown)
}

func TestSavedValuesAppearOnViewOnlyPage(t *testing.T) {
	h := newHarness(t, models.NewRecord())

	h.edit.SetValues("hello", "world")
	require.NoError(t, h.edit.Save())
	require.NoError(t, h.edit.GoToOtherView())

	a, b := h.viewOnly.Values()
	assert.Equal(t, "hello", a)
	assert.Equal(t, "world", b)
}

func TestEditActivationKeepsUnsavedInput(t *testing.T) {
	h := newHarness(t, models.NewRecord())

	h.edit.SetValues("draft", "")
	require.NoError(t, h.edit.GoToOtherView())
	require.NoError(t, h.viewOnly.GoToOtherView())

	a, _ := h.edit.Values()
	assert.Equal(t, "draft", a)
}

func TestViewNames(t *testing.T) {
	h := newHarness(t, nil)
	assert.Equal(t, EditViewName, h.edit.Name())
	assert.Equal(t, ViewOnlyViewName, h.viewOnly.Name())
	assert.NotNil(t, h.edit.Content())
	assert.NotNil(t, h.viewOnly.Content())
}
