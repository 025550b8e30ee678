// Package modal models dashboard dialogs as a closed or open state that owns
// its form while open.
package modal

import pkgerrors "github.com/angelmondragon/customer360/pkg/errors"

// ErrClosed is returned when submitting a dialog that is not open.
var ErrClosed = pkgerrors.New(pkgerrors.CodeStateConflict, "dialog is closed")

// State is either closed or open with a form of type F. The zero value is
// closed. Closing discards the form, so reopening starts from whatever form
// the caller passes to Open.
type State[F any] struct {
	open bool
	form F
}

// Open shows the dialog with form, replacing any form already open.
func (s *State[F]) Open(form F) {
	s.open = true
	s.form = form
}

// Close hides the dialog and drops its form.
func (s *State[F]) Close() {
	var zero F
	s.open = false
	s.form = zero
}

func (s *State[F]) IsOpen() bool {
	return s.open
}

// Form returns the open form. ok is false when the dialog is closed.
func (s *State[F]) Form() (form F, ok bool) {
	if !s.open {
		var zero F
		return zero, false
	}
	return s.form, true
}

// Update edits the open form in place. It reports false and does nothing
// when the dialog is closed.
func (s *State[F]) Update(fn func(*F)) bool {
	if !s.open {
		return false
	}
	fn(&s.form)
	return true
}

// Submit hands the open form to fn and closes the dialog when fn succeeds.
// A failing fn leaves the dialog open with its form intact.
func (s *State[F]) Submit(fn func(F) error) error {
	if !s.open {
		return ErrClosed
	}
	if err := fn(s.form); err != nil {
		return err
	}
	s.Close()
	return nil
}
