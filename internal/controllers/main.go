package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bin-tally/internal/inventory"
	"bin-tally/internal/logger"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a non-negative whole number")
	ErrNoActiveBin     = errors.New("no bin started")
)

// BinView is the presentation surface the controller drives. Both the
// Fyne window and the console collector implement it.
type BinView interface {
	ShowBin(binID string)
	ShowEntries(entries []inventory.PartEntry)
	SetCollectionEnabled(enabled bool)
	ShowError(title string, err error)
}

// MainController translates collector events into session operations
type MainController struct {
	session     *inventory.Session
	view        BinView
	logger      logger.Logger
	flushOnExit bool
	isShutdown  bool
}

func NewMainController(session *inventory.Session, log logger.Logger, flushOnExit bool) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		session:     session,
		logger:      log,
		flushOnExit: flushOnExit,
	}
}

// SetView associates a view and pushes the current state to it
func (mc *MainController) SetView(view BinView) {
	mc.view = view
	mc.refresh()
}

// NewBin saves the active bin and starts an empty one. Blank ids are ignored.
func (mc *MainController) NewBin(binID string) error {
	if binID == "" {
		return nil
	}

	previous := mc.session.BinID()
	if err := mc.session.Start(binID); err != nil {
		mc.fail("Could not save bin "+previous, err)
		return err
	}

	mc.logger.Info("MainController", "bin started", map[string]interface{}{
		"bin":      binID,
		"previous": previous,
	})
	mc.refresh()
	return nil
}

// Scan counts one unit of the scanned part.
func (mc *MainController) Scan(token string) {
	entry, changed := mc.session.Record(token)
	if !changed {
		if token != "" {
			mc.logger.Debug("MainController", "scan ignored without active bin", map[string]interface{}{
				"part": token,
			})
		}
		return
	}

	mc.logger.Debug("MainController", "part scanned", map[string]interface{}{
		"bin":  mc.session.BinID(),
		"part": entry.PartNumber,
		"qty":  entry.Quantity,
	})
	mc.refresh()
}

// ManualEntry sets a part's quantity from form text. Blank fields are
// ignored; a quantity that is not a non-negative integer is rejected.
func (mc *MainController) ManualEntry(partNumber, quantity string) error {
	if partNumber == "" || strings.TrimSpace(quantity) == "" {
		return nil
	}
	if !mc.session.Active() {
		return ErrNoActiveBin
	}

	qty, err := ParseQuantity(quantity)
	if err != nil {
		return err
	}

	entry, changed, err := mc.session.RecordQuantity(partNumber, qty)
	if err != nil {
		return err
	}
	if changed {
		mc.logger.Debug("MainController", "part quantity set", map[string]interface{}{
			"bin":  mc.session.BinID(),
			"part": entry.PartNumber,
			"qty":  entry.Quantity,
		})
		mc.refresh()
	}
	return nil
}

// Save writes the active bin. I/O errors are reported and returned.
func (mc *MainController) Save() error {
	if err := mc.session.Save(); err != nil {
		mc.fail("Could not save bin "+mc.session.BinID(), err)
		return err
	}
	return nil
}

func (mc *MainController) BinID() string {
	return mc.session.BinID()
}

func (mc *MainController) Entries() []inventory.PartEntry {
	return mc.session.Entries()
}

// Shutdown flushes the active bin once when flush-on-exit is enabled.
func (mc *MainController) Shutdown() {
	if mc.isShutdown {
		return
	}
	mc.isShutdown = true

	if !mc.flushOnExit || !mc.session.Active() {
		return
	}
	if err := mc.session.Save(); err != nil {
		mc.logger.Error("MainController", err, map[string]interface{}{
			"bin":   mc.session.BinID(),
			"stage": "exit flush",
		})
		return
	}
	mc.logger.Info("MainController", "bin saved on exit", map[string]interface{}{
		"bin":   mc.session.BinID(),
		"parts": mc.session.Len(),
	})
}

// ParseQuantity accepts a non-negative base-10 integer, ignoring
// surrounding whitespace.
func ParseQuantity(text string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || qty < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, text)
	}
	return qty, nil
}

func (mc *MainController) refresh() {
	if mc.view == nil {
		return
	}
	active := mc.session.Active()
	mc.view.ShowBin(mc.session.BinID())
	mc.view.ShowEntries(mc.session.Entries())
	mc.view.SetCollectionEnabled(active)
}

func (mc *MainController) fail(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"bin": mc.session.BinID(),
	})
	if mc.view != nil {
		mc.view.ShowError(title, err)
	}
}
