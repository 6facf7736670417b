package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the bin actions. New Bin is always available; Save Bin
// and Manual Input need an active bin.
type Toolbar struct {
	container    *fyne.Container
	NewBinButton *widget.Button
	SaveButton   *widget.Button
	ManualButton *widget.Button

	newBinHandler func()
	saveHandler   func()
	manualHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.NewBinButton = widget.NewButton("New Bin", func() {
		if t.newBinHandler != nil {
			t.newBinHandler()
		}
	})
	t.NewBinButton.Importance = widget.HighImportance

	t.SaveButton = widget.NewButton("Save Bin", func() {
		if t.saveHandler != nil {
			t.saveHandler()
		}
	})
	t.SaveButton.Disable()

	t.ManualButton = widget.NewButton("Manual Input", func() {
		if t.manualHandler != nil {
			t.manualHandler()
		}
	})
	t.ManualButton.Disable()
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewGridWithColumns(3,
		t.NewBinButton,
		t.SaveButton,
		t.ManualButton,
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetNewBinHandler(handler func()) {
	t.newBinHandler = handler
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

func (t *Toolbar) SetManualHandler(handler func()) {
	t.manualHandler = handler
}

// SetBinActive toggles the actions that require a bin
func (t *Toolbar) SetBinActive(active bool) {
	if active {
		t.SaveButton.Enable()
		t.ManualButton.Enable()
	} else {
		t.SaveButton.Disable()
		t.ManualButton.Disable()
	}
}
