package components

import (
	"strconv"

	"bin-tally/internal/inventory"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PartList renders the bin's entries as two columns under a header row.
type PartList struct {
	container *fyne.Container
	list      *widget.List
	entries   []inventory.PartEntry

	selectHandler func()
}

func NewPartList() *PartList {
	pl := &PartList{}

	pl.list = widget.NewList(
		func() int {
			return len(pl.entries)
		},
		func() fyne.CanvasObject {
			return container.NewGridWithColumns(2,
				widget.NewLabel("295100330"),
				widget.NewLabel("0"),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(pl.entries) {
				return
			}
			row := item.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(pl.entries[id].PartNumber)
			row.Objects[1].(*widget.Label).SetText(strconv.Itoa(pl.entries[id].Quantity))
		},
	)
	pl.list.OnSelected = func(widget.ListItemID) {
		pl.list.UnselectAll()
		if pl.selectHandler != nil {
			pl.selectHandler()
		}
	}

	header := container.NewGridWithColumns(2,
		widget.NewLabelWithStyle("Part #", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("QTY", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	pl.container = container.NewBorder(header, nil, nil, nil, pl.list)
	return pl
}

func (pl *PartList) GetContainer() *fyne.Container {
	return pl.container
}

func (pl *PartList) SetEntries(entries []inventory.PartEntry) {
	pl.entries = entries
	pl.list.Refresh()
	if len(entries) > 0 {
		pl.list.ScrollToBottom()
	}
}

func (pl *PartList) Entries() []inventory.PartEntry {
	return pl.entries
}

// SetSelectHandler is called after a row is clicked; rows are not
// editable, so selection only hands focus back to the scan field.
func (pl *PartList) SetSelectHandler(handler func()) {
	pl.selectHandler = handler
}
