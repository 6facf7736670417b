package views

import (
	"fmt"

	"bin-tally/internal/controllers"
	"bin-tally/internal/inventory"
	"bin-tally/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const scanPlaceholder = "Scan a barcode here..."

var _ controllers.BinView = (*MainView)(nil)

// MainView is the bin counting window. It holds no inventory state of
// its own; the controller pushes bin and entries through BinView.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	status        *components.BinStatus
	partList      *components.PartList
	scanEntry     *widget.Entry

	newBinHandler      func(binID string)
	saveHandler        func()
	manualEntryHandler func(partNumber, quantity string)
	scanHandler        func(token string)
}

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.status = components.NewBinStatus()
	mv.partList = components.NewPartList()

	mv.scanEntry = widget.NewEntry()
	mv.scanEntry.SetPlaceHolder(scanPlaceholder)
	mv.scanEntry.Disable()
}

func (mv *MainView) buildLayout() {
	top := container.NewVBox(
		mv.toolbar.GetContainer(),
		mv.status.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		top,
		mv.scanEntry,
		nil,
		nil,
		mv.partList.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetNewBinHandler(mv.promptNewBin)
	mv.toolbar.SetManualHandler(mv.promptManualEntry)
	mv.toolbar.SetSaveHandler(func() {
		if mv.saveHandler != nil {
			mv.saveHandler()
		}
		mv.focusScan()
	})

	mv.scanEntry.OnSubmitted = mv.submitScan
	mv.partList.SetSelectHandler(mv.focusScan)
}

func (mv *MainView) promptNewBin() {
	form := components.NewNewBinForm()
	form.Show(mv.window, func(binID string) {
		if mv.newBinHandler != nil {
			mv.newBinHandler(binID)
		}
		mv.focusScan()
	})
}

func (mv *MainView) promptManualEntry() {
	form := components.NewManualForm(func(s string) error {
		_, err := controllers.ParseQuantity(s)
		return err
	})
	form.Show(mv.window, func(partNumber, quantity string) {
		if mv.manualEntryHandler != nil {
			mv.manualEntryHandler(partNumber, quantity)
		}
		mv.focusScan()
	})
}

func (mv *MainView) submitScan(text string) {
	if text != "" && mv.scanHandler != nil {
		mv.scanHandler(text)
	}
	mv.scanEntry.SetText("")
	mv.focusScan()
}

func (mv *MainView) focusScan() {
	if mv.scanEntry.Disabled() {
		return
	}
	mv.window.Canvas().Focus(mv.scanEntry)
}

func (mv *MainView) SetNewBinHandler(handler func(binID string)) {
	mv.newBinHandler = handler
}

func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

func (mv *MainView) SetManualEntryHandler(handler func(partNumber, quantity string)) {
	mv.manualEntryHandler = handler
}

func (mv *MainView) SetScanHandler(handler func(token string)) {
	mv.scanHandler = handler
}

// BinView implementation. Called from UI callbacks, so no fyne.Do.

func (mv *MainView) ShowBin(binID string) {
	mv.status.SetBin(binID)
}

func (mv *MainView) ShowEntries(entries []inventory.PartEntry) {
	mv.partList.SetEntries(entries)
	mv.status.SetTotals(len(entries), inventory.Snapshot{Entries: entries}.TotalQuantity())
}

func (mv *MainView) SetCollectionEnabled(enabled bool) {
	mv.toolbar.SetBinActive(enabled)
	if enabled {
		mv.scanEntry.Enable()
	} else {
		mv.scanEntry.Disable()
	}
}

func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
}

func (mv *MainView) Show() {
	mv.window.Show()
}

// ViewState is a snapshot of what the window currently displays
type ViewState struct {
	BinText       string
	TotalsText    string
	Entries       []inventory.PartEntry
	ScanEnabled   bool
	SaveEnabled   bool
	ManualEnabled bool
}

func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		BinText:       mv.status.BinText(),
		TotalsText:    mv.status.TotalsText(),
		Entries:       mv.partList.Entries(),
		ScanEnabled:   !mv.scanEntry.Disabled(),
		SaveEnabled:   !mv.toolbar.SaveButton.Disabled(),
		ManualEnabled: !mv.toolbar.ManualButton.Disabled(),
	}
}
