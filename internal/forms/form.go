// Package forms implements the dashboard's entity forms: validated input for
// one catalog kind that creates or updates the entity through the API, plus
// a confirm-then-delete flow for existing entities.
package forms

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tokoadmin/internal/models"
	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
	zlog "github.com/rs/zerolog/log"
)

// GenericFailure is the notification shown for any failed request.
const GenericFailure = "Something went wrong"

var (
	// ErrInvalid means validation blocked the submission; see FieldErrors.
	ErrInvalid = errors.New("form has invalid fields")
	// ErrBusy means a submission or deletion is already in flight.
	ErrBusy = errors.New("form is submitting")
	// ErrNotEditing means a delete was requested on a create form.
	ErrNotEditing = errors.New("form has no entity to delete")
	// ErrNotConfirmed means ConfirmDelete ran without OpenDelete.
	ErrNotConfirmed = errors.New("delete was not confirmed")
)

// API is the subset of the catalog client a form writes through.
type API interface {
	Create(ctx context.Context, storeID string, kind models.Kind, in, out interface{}) error
	Update(ctx context.Context, storeID string, kind models.Kind, id string, in, out interface{}) error
	Delete(ctx context.Context, storeID string, kind models.Kind, id string, out interface{}) error
}

// Refresher re-fetches a list after it was mutated.
type Refresher interface {
	Refresh(ctx context.Context, kind models.Kind) error
}

// Navigator moves the dashboard to another page.
type Navigator interface {
	Push(path string)
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Deps are the collaborators shared by forms and row action menus.
type Deps struct {
	API       API
	Refresher Refresher
	Navigator Navigator
	Notifier  Notifier
}

// State is the submission state of a form.
type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// ListPath returns the dashboard path of a kind's list page.
func ListPath(storeID string, kind models.Kind) string {
	return fmt.Sprintf("/%s/%s", storeID, kind.Route())
}

// Form is the input surface for one entity of kind. V is the value struct
// sent to the API; its validate tags are checked before any request.
type Form[V any] struct {
	kind       models.Kind
	storeID    string
	entityID   string
	initial    *V
	deleteHint string
	deps       Deps
	validate   *validator.Validate

	mu          sync.Mutex
	state       State
	confirmOpen bool
	fieldErrors map[string]string
}

func newForm[V any](kind models.Kind, storeID, entityID string, initial *V, deleteHint string, deps Deps) *Form[V] {
	return &Form[V]{
		kind:        kind,
		storeID:     storeID,
		entityID:    entityID,
		initial:     initial,
		deleteHint:  deleteHint,
		deps:        deps,
		validate:    validation.New(),
		fieldErrors: map[string]string{},
	}
}

// Editing reports whether the form edits an existing entity.
func (f *Form[V]) Editing() bool { return f.initial != nil }

func (f *Form[V]) Title() string {
	if f.Editing() {
		return "Edit " + f.kind.Noun()
	}
	return "Create " + f.kind.Noun()
}

func (f *Form[V]) Description() string {
	if f.Editing() {
		return "Edit " + f.kind.Noun()
	}
	return "Add a new " + f.kind.Noun()
}

// Action is the submit button caption.
func (f *Form[V]) Action() string {
	if f.Editing() {
		return "Save changes"
	}
	return "Create"
}

// SuccessMessage is shown after a successful submission.
func (f *Form[V]) SuccessMessage() string {
	if f.Editing() {
		return f.kind.Label() + " updated"
	}
	return f.kind.Label() + " created"
}

// Defaults returns the values the inputs start with.
func (f *Form[V]) Defaults() V {
	if f.initial != nil {
		return *f.initial
	}
	var zero V
	return zero
}

// State returns the current submission state.
func (f *Form[V]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Disabled reports whether inputs must be disabled.
func (f *Form[V]) Disabled() bool {
	return f.State() == Submitting
}

// DeleteOpen reports whether the delete confirmation is showing.
func (f *Form[V]) DeleteOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmOpen
}

// FieldErrors returns the inline message of each invalid field, keyed by the
// value struct's field name.
func (f *Form[V]) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

func (f *Form[V]) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Submitting {
		return ErrBusy
	}
	f.state = Submitting
	return nil
}

func (f *Form[V]) end() {
	f.mu.Lock()
	f.state = Idle
	f.mu.Unlock()
}

// Submit validates values and, when valid, creates or updates the entity.
// On success dependent lists are refreshed, the dashboard navigates to the
// list page and a success message is shown. On failure a generic error is
// shown and the API error returned.
func (f *Form[V]) Submit(ctx context.Context, values V) error {
	if err := f.validate.Struct(values); err != nil {
		f.mu.Lock()
		f.fieldErrors = validation.Fields(err)
		f.mu.Unlock()
		return ErrInvalid
	}

	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	f.mu.Lock()
	f.fieldErrors = map[string]string{}
	f.mu.Unlock()

	var err error
	if f.Editing() {
		err = f.deps.API.Update(ctx, f.storeID, f.kind, f.entityID, values, nil)
	} else {
		err = f.deps.API.Create(ctx, f.storeID, f.kind, values, nil)
	}
	if err != nil {
		zlog.Warn().Err(err).Str("kind", string(f.kind)).Msg("form submission failed")
		f.deps.Notifier.Error(GenericFailure)
		return err
	}

	f.afterMutation(ctx)
	f.deps.Notifier.Success(f.SuccessMessage())
	return nil
}

// OpenDelete shows the delete confirmation. Only existing entities can be
// deleted.
func (f *Form[V]) OpenDelete() error {
	if !f.Editing() {
		return ErrNotEditing
	}
	f.mu.Lock()
	f.confirmOpen = true
	f.mu.Unlock()
	return nil
}

// CloseDelete dismisses the confirmation without deleting.
func (f *Form[V]) CloseDelete() {
	f.mu.Lock()
	f.confirmOpen = false
	f.mu.Unlock()
}

// ConfirmDelete deletes the entity. A failure most often means other
// entities still reference this one, which the notification hints at.
func (f *Form[V]) ConfirmDelete(ctx context.Context) error {
	if !f.Editing() {
		return ErrNotEditing
	}
	if !f.DeleteOpen() {
		return ErrNotConfirmed
	}
	if err := f.begin(); err != nil {
		return err
	}
	defer func() {
		f.end()
		f.CloseDelete()
	}()

	if err := f.deps.API.Delete(ctx, f.storeID, f.kind, f.entityID, nil); err != nil {
		zlog.Warn().Err(err).Str("kind", string(f.kind)).Str("id", f.entityID).Msg("delete failed")
		f.deps.Notifier.Error(f.deleteHint)
		return err
	}

	f.afterMutation(ctx)
	f.deps.Notifier.Success(f.kind.Label() + " deleted")
	return nil
}

// afterMutation pulls the affected list again and returns to it. The write
// already succeeded, so a failed refresh is only logged.
func (f *Form[V]) afterMutation(ctx context.Context) {
	if f.deps.Refresher != nil {
		if err := f.deps.Refresher.Refresh(ctx, f.kind); err != nil {
			zlog.Warn().Err(err).Str("kind", string(f.kind)).Msg("failed to refresh list")
		}
	}
	f.deps.Navigator.Push(ListPath(f.storeID, f.kind))
}
