// Package form implements the create/edit form shared by every resource
// screen.
//
// A Form holds a Draft of field name to string value. Open seeds it from the
// descriptor's defaults (create) or from an existing record (edit), Change
// merges one field at a time and Submit validates the draft, parses numeric
// fields and hands the body to a Writer. A failed submit leaves the form open
// with the draft untouched so the user can correct it and try again; Cancel
// discards it without any request.
//
// Errors:
//   - ErrNotOpen, ErrBusy, ErrUnknownField are sentinels for errors.Is.
//   - *ValidationError lists per-field messages; nothing is sent.
//   - *SubmitError carries the message to show after a rejected write: the
//     backend's own message when it sent one, the generic text otherwise.
package form
