package tables

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tokoadmin/internal/forms"
	"tokoadmin/internal/models"

	zlog "github.com/rs/zerolog/log"
)

// ErrUnknownKind is returned for rows whose kind is not a catalog kind.
var ErrUnknownKind = errors.New("row has an unknown kind")

// Clipboard writes text to the host clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// CellAction is the Copy id / Update / Delete menu of one table row.
type CellAction struct {
	storeID   string
	row       Row
	deps      forms.Deps
	clipboard Clipboard

	mu          sync.Mutex
	loading     bool
	confirmOpen bool
}

// NewCellAction creates the menu for row in storeID.
func NewCellAction(storeID string, row Row, clipboard Clipboard, deps forms.Deps) *CellAction {
	return &CellAction{storeID: storeID, row: row, deps: deps, clipboard: clipboard}
}

// kind resolves the row's declared kind against the closed set of catalog
// kinds.
func (a *CellAction) kind() (models.Kind, error) {
	switch k := a.row.RowKind(); k {
	case models.KindBoard, models.KindCategory, models.KindSize, models.KindColor, models.KindProduct:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}

// Copy puts the row's ID on the clipboard. Clipboard failures are silent.
func (a *CellAction) Copy() error {
	kind, err := a.kind()
	if err != nil {
		return err
	}
	if err := a.clipboard.WriteText(a.row.RowID()); err != nil {
		zlog.Debug().Err(err).Msg("clipboard write failed")
		return nil
	}
	a.deps.Notifier.Success(kind.Label() + " id copied to the clipboard")
	return nil
}

// EditPath returns the dashboard path of the row's edit page.
func (a *CellAction) EditPath() (string, error) {
	kind, err := a.kind()
	if err != nil {
		return "", err
	}
	return forms.ListPath(a.storeID, kind) + "/" + a.row.RowID(), nil
}

// Edit navigates to the row's edit page.
func (a *CellAction) Edit() error {
	path, err := a.EditPath()
	if err != nil {
		return err
	}
	a.deps.Navigator.Push(path)
	return nil
}

// OpenDelete shows the delete confirmation.
func (a *CellAction) OpenDelete() {
	a.mu.Lock()
	a.confirmOpen = true
	a.mu.Unlock()
}

// CloseDelete dismisses the confirmation.
func (a *CellAction) CloseDelete() {
	a.mu.Lock()
	a.confirmOpen = false
	a.mu.Unlock()
}

// DeleteOpen reports whether the confirmation is showing.
func (a *CellAction) DeleteOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.confirmOpen
}

// Loading reports whether a deletion is in flight.
func (a *CellAction) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// ConfirmDelete deletes the row's entity and refreshes its list. The
// confirmation closes whatever the outcome.
func (a *CellAction) ConfirmDelete(ctx context.Context) error {
	kind, err := a.kind()
	if err != nil {
		return err
	}

	a.mu.Lock()
	if !a.confirmOpen {
		a.mu.Unlock()
		return forms.ErrNotConfirmed
	}
	if a.loading {
		a.mu.Unlock()
		return forms.ErrBusy
	}
	a.loading = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.loading = false
		a.confirmOpen = false
		a.mu.Unlock()
	}()

	if err := a.deps.API.Delete(ctx, a.storeID, kind, a.row.RowID(), nil); err != nil {
		zlog.Warn().Err(err).Str("kind", string(kind)).Str("id", a.row.RowID()).Msg("row delete failed")
		a.deps.Notifier.Error(forms.GenericFailure)
		return err
	}
	if a.deps.Refresher != nil {
		if err := a.deps.Refresher.Refresh(ctx, kind); err != nil {
			zlog.Warn().Err(err).Str("kind", string(kind)).Msg("failed to refresh list")
		}
	}
	a.deps.Notifier.Success(kind.Label() + " deleted")
	return nil
}
