// Package confirmtoggle implements a boolean switch whose disabling
// transition must be confirmed before it is committed.
//
// The toggle never owns the committed value. Enabling, and any change made
// while the owning record is still being created, is reported to the caller
// immediately through OnChange. Disabling an existing record first opens a
// confirmation surface; only ConfirmDisable reports the change. Rendering
// layers consume View, which is a pure function of the toggle state.
package confirmtoggle
