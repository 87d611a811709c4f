package views

import (
	"shared-data/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ViewOnlyView shows the saved record as plain text
type ViewOnlyView struct {
	controller Controller

	container    *fyne.Container
	titleA       *widget.Label
	titleB       *widget.Label
	valueA       *widget.Label
	valueB       *widget.Label
	switchButton *widget.Button
}

func NewViewOnlyView(controller Controller) *ViewOnlyView {
	v := &ViewOnlyView{controller: controller}
	v.createComponents()
	v.buildLayout()
	return v
}

func (v *ViewOnlyView) createComponents() {
	v.titleA = widget.NewLabel("Page B - View Data A")
	v.titleB = widget.NewLabel("Page B - View Data B")
	v.valueA = widget.NewLabel(v.controller.GetField(models.FieldA))
	v.valueB = widget.NewLabel(v.controller.GetField(models.FieldB))
	v.valueA.Wrapping = fyne.TextWrapWord
	v.valueB.Wrapping = fyne.TextWrapWord

	v.switchButton = widget.NewButton("Go to Page A", func() {
		_ = v.GoToOtherView()
	})
}

func (v *ViewOnlyView) buildLayout() {
	v.container = container.NewVBox(
		container.NewCenter(v.titleA),
		v.valueA,
		container.NewCenter(v.titleB),
		v.valueB,
		container.NewCenter(v.switchButton),
	)
}

func (v *ViewOnlyView) Name() string {
	return ViewOnlyViewName
}

func (v *ViewOnlyView) Content() fyne.CanvasObject {
	return v.container
}

// OnActivate re-reads the record, which may have been saved since the view
// was last shown.
func (v *ViewOnlyView) OnActivate() {
	v.valueA.SetText(v.controller.GetField(models.FieldA))
	v.valueB.SetText(v.controller.GetField(models.FieldB))
}

// Values returns the rendered text.
func (v *ViewOnlyView) Values() (string, string) {
	return v.valueA.Text, v.valueB.Text
}

func (v *ViewOnlyView) GoToOtherView() error {
	return v.controller.Activate(EditViewName)
}
