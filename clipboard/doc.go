// Package clipboard holds the editor's single live clipboard payload.
//
// A payload is one of a closed set of variants (see Kind). Copying
// replaces the live payload wholesale; nothing keeps a history. Pasting is
// left to callers, which switch on the payload's type and return an error
// wrapping ErrPayloadKindMismatch when it does not fit their target.
package clipboard
