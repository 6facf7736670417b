package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const binLabelPrefix = "Bin #: "

// BinStatus shows the active bin id and running totals. The bin id is
// always supplied by the controller; the label text is display only.
type BinStatus struct {
	container   *fyne.Container
	binLabel    *widget.Label
	totalsLabel *widget.Label
}

func NewBinStatus() *BinStatus {
	binLabel := widget.NewLabel(binLabelPrefix)
	binLabel.TextStyle = fyne.TextStyle{Bold: true}
	totalsLabel := widget.NewLabel("")

	mainContainer := container.NewBorder(
		nil, nil,
		binLabel,
		totalsLabel,
	)

	return &BinStatus{
		container:   mainContainer,
		binLabel:    binLabel,
		totalsLabel: totalsLabel,
	}
}

func (bs *BinStatus) GetContainer() *fyne.Container {
	return bs.container
}

func (bs *BinStatus) SetBin(binID string) {
	bs.binLabel.SetText(binLabelPrefix + binID)
}

func (bs *BinStatus) SetTotals(parts, units int) {
	if parts == 0 {
		bs.totalsLabel.SetText("")
		return
	}
	bs.totalsLabel.SetText(fmt.Sprintf("%d parts / %d units", parts, units))
}

func (bs *BinStatus) BinText() string {
	return bs.binLabel.Text
}

func (bs *BinStatus) TotalsText() string {
	return bs.totalsLabel.Text
}
