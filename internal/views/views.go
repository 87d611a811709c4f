package views

// Names the views register under
const (
	EditViewName     = "EditView"
	ViewOnlyViewName = "ViewOnlyView"
)

// Controller is the shared-state owner as seen from a view. Views keep a
// reference to it but never own it.
type Controller interface {
	GetField(name string) string
	Save(values map[string]string) error
	Activate(name string) error
}
