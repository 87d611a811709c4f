package views

import (
	"shared-data/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// EditView buffers two editable values until the user saves them.
type EditView struct {
	controller Controller

	container    *fyne.Container
	labelA       *widget.Label
	labelB       *widget.Label
	entryA       *widget.Entry
	entryB       *widget.Entry
	saveButton   *widget.Button
	switchButton *widget.Button
}

// NewEditView creates the edit page with its inputs filled from the record
func NewEditView(controller Controller) *EditView {
	v := &EditView{controller: controller}
	v.createComponents()
	v.buildLayout()
	return v
}

func (v *EditView) createComponents() {
	v.labelA = widget.NewLabel("Page A - Save Data A")
	v.labelB = widget.NewLabel("Page A - Save Data B")

	v.entryA = widget.NewEntry()
	v.entryA.SetText(v.controller.GetField(models.FieldA))
	v.entryB = widget.NewEntry()
	v.entryB.SetText(v.controller.GetField(models.FieldB))

	// failures are already reported to the user by the controller
	v.saveButton = widget.NewButton("Save Data", func() {
		_ = v.Save()
	})
	v.switchButton = widget.NewButton("Go to Page B", func() {
		_ = v.GoToOtherView()
	})
}

func (v *EditView) buildLayout() {
	v.container = container.NewVBox(
		container.NewCenter(v.labelA),
		v.entryA,
		container.NewCenter(v.labelB),
		v.entryB,
		container.NewCenter(container.NewHBox(v.saveButton, v.switchButton)),
	)
}

func (v *EditView) Name() string {
	return EditViewName
}

func (v *EditView) Content() fyne.CanvasObject {
	return v.container
}

// OnActivate keeps whatever the user typed; the buffers are not refreshed.
func (v *EditView) OnActivate() {}

// Values returns the buffered, unsaved input.
func (v *EditView) Values() (string, string) {
	return v.entryA.Text, v.entryB.Text
}

func (v *EditView) SetValues(a, b string) {
	v.entryA.SetText(a)
	v.entryB.SetText(b)
}

// Save copies the buffers into the record and persists it.
func (v *EditView) Save() error {
	a, b := v.Values()
	return v.controller.Save(map[string]string{
		models.FieldA: a,
		models.FieldB: b,
	})
}

func (v *EditView) GoToOtherView() error {
	return v.controller.Activate(ViewOnlyViewName)
}
