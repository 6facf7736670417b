package app

import (
	"bin-tally/internal/controllers"
	"bin-tally/internal/views"
)

// Handlers routes view events to the controller. Errors are already
// logged and shown by the controller, so they stop here.
type Handlers struct {
	controller *controllers.MainController
	view       *views.MainView
}

func NewHandlers(controller *controllers.MainController, view *views.MainView) *Handlers {
	return &Handlers{
		controller: controller,
		view:       view,
	}
}

func (h *Handlers) Wire() {
	h.view.SetNewBinHandler(h.HandleNewBin)
	h.view.SetSaveHandler(h.HandleSave)
	h.view.SetManualEntryHandler(h.HandleManualEntry)
	h.view.SetScanHandler(h.controller.Scan)
}

func (h *Handlers) HandleNewBin(binID string) {
	_ = h.controller.NewBin(binID)
}

func (h *Handlers) HandleSave() {
	_ = h.controller.Save()
}

func (h *Handlers) HandleManualEntry(partNumber, quantity string) {
	// The form validator already rejects bad quantities; a failure here
	// means the validator and the controller disagree.
	if err := h.controller.ManualEntry(partNumber, quantity); err != nil {
		h.view.ShowError("Could not record "+partNumber, err)
	}
}
