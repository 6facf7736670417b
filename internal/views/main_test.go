package views

import (
	"testing"

	"bin-tally/internal/controllers"
	"bin-tally/internal/inventory"
	"bin-tally/internal/logger"
	"bin-tally/internal/storage"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWiredView(t *testing.T, fs afero.Fs) (*MainView, *controllers.MainController) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("bin-tally")
	t.Cleanup(w.Close)

	writer := storage.NewCSVWriter(fs, "", "csv", logger.NoOpLogger{})
	mc := controllers.NewMainController(inventory.NewSession(writer), logger.NoOpLogger{}, false)

	mv := NewMainView(w)
	mv.SetNewBinHandler(func(binID string) { _ = mc.NewBin(binID) })
	mv.SetSaveHandler(func() { _ = mc.Save() })
	mv.SetManualEntryHandler(func(part, qty string) { _ = mc.ManualEntry(part, qty) })
	mv.SetScanHandler(mc.Scan)
	mc.SetView(mv)
	return mv, mc
}

func TestInitialStateDisablesCollection(t *testing.T) {
	mv, _ := newWiredView(t, afero.NewMemMapFs())

	state := mv.GetViewState()
	assert.Equal(t, "Bin #: ", state.BinText)
	assert.False(t, state.ScanEnabled)
	assert.False(t, state.SaveEnabled)
	assert.False(t, state.ManualEnabled)
	assert.False(t, mv.toolbar.NewBinButton.Disabled())
}

func TestScanFlowUpdatesWindow(t *testing.T) {
	fs := afero.NewMemMapFs()
	mv, _ := newWiredView(t, fs)

	mv.newBinHandler("C27")
	state := mv.GetViewState()
	assert.Equal(t, "Bin #: C27", state.BinText)
	assert.True(t, state.ScanEnabled)
	assert.True(t, state.SaveEnabled)
	assert.True(t, state.ManualEnabled)

	mv.scanEntry.SetText("295100330")
	mv.submitScan(mv.scanEntry.Text)
	mv.scanEntry.SetText("295100330")
	mv.submitScan(mv.scanEntry.Text)
	mv.manualEntryHandler("100200300", "5")

	assert.Empty(t, mv.scanEntry.Text)
	state = mv.GetViewState()
	assert.Equal(t, []inventory.PartEntry{
		{PartNumber: "295100330", Quantity: 2},
		{PartNumber: "100200300", Quantity: 5},
	}, state.Entries)
	assert.Equal(t, "2 parts / 7 units", state.TotalsText)

	test.Tap(mv.toolbar.SaveButton)
	data, err := afero.ReadFile(fs, "C27.csv")
	require.NoError(t, err)
	assert.Equal(t, "bin,part,qty\nC27,295100330,2\nC27,100200300,5\n", string(data))
}

func TestBlankScanIsIgnored(t *testing.T) {
	mv, _ := newWiredView(t, afero.NewMemMapFs())
	mv.newBinHandler("B1")

	mv.submitScan("")

	assert.Empty(t, mv.GetViewState().Entries)
}

func TestNewBinClearsList(t *testing.T) {
	fs := afero.NewMemMapFs()
	mv, _ := newWiredView(t, fs)
	mv.newBinHandler("A1")
	mv.submitScan("X")

	mv.newBinHandler("A2")

	assert.Equal(t, "Bin #: A2", mv.GetViewState().BinText)
	assert.Empty(t, mv.GetViewState().Entries)
	exists, err := afero.Exists(fs, "A1.csv")
	require.NoError(t, err)
	assert.True(t, exists)
}
