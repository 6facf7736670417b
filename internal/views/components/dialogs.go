package components

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const dialogWidth = 600

var errRequired = errors.New("required")

func requireText(s string) error {
	if s == "" {
		return errRequired
	}
	return nil
}

// NewBinForm collects a bin id. The form's confirm button stays
// disabled while the field is empty.
type NewBinForm struct {
	BinEntry *widget.Entry
}

func NewNewBinForm() *NewBinForm {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Ex. C27")
	entry.Validator = requireText
	return &NewBinForm{BinEntry: entry}
}

func (f *NewBinForm) Items() []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem("Bin #:", f.BinEntry),
	}
}

func (f *NewBinForm) Show(window fyne.Window, onSubmit func(binID string)) {
	d := dialog.NewForm("New Bin", "Add Bin", "Cancel", f.Items(), func(confirmed bool) {
		if confirmed {
			onSubmit(f.BinEntry.Text)
		}
	}, window)
	d.Resize(fyne.NewSize(dialogWidth, d.MinSize().Height))
	d.Show()
	window.Canvas().Focus(f.BinEntry)
}

// ManualForm collects a part number and an explicit quantity. The
// quantity validator decides what counts as a usable number.
type ManualForm struct {
	PartEntry *widget.Entry
	QtyEntry  *widget.Entry
}

func NewManualForm(validateQty func(string) error) *ManualForm {
	part := widget.NewEntry()
	part.SetPlaceHolder("Ex. 295100330")
	part.Validator = requireText

	qty := widget.NewEntry()
	qty.SetPlaceHolder("Ex. 1")
	qty.Validator = func(s string) error {
		if err := requireText(s); err != nil {
			return err
		}
		if validateQty != nil {
			return validateQty(s)
		}
		return nil
	}

	return &ManualForm{PartEntry: part, QtyEntry: qty}
}

func (f *ManualForm) Items() []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem("Part #:", f.PartEntry),
		widget.NewFormItem("Qty #:", f.QtyEntry),
	}
}

func (f *ManualForm) Show(window fyne.Window, onSubmit func(partNumber, quantity string)) {
	d := dialog.NewForm("New Item", "Add or Edit Item", "Cancel", f.Items(), func(confirmed bool) {
		if confirmed {
			onSubmit(f.PartEntry.Text, f.QtyEntry.Text)
		}
	}, window)
	d.Resize(fyne.NewSize(dialogWidth, d.MinSize().Height))
	d.Show()
	window.Canvas().Focus(f.PartEntry)
}
