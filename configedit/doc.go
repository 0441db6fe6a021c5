/*
Package configedit applies admin configuration changes to the poll
document.

# Operations

  - SetTitle: non-empty title
  - SetPassword: 1-8 chars, at least one ASCII letter and one digit;
    fires the password-change notifier after persisting
  - AddOption: appends; duplicates are a silent no-op (returns false)
  - RemoveOption: by index; eagerly clamps maxSelections down to the new
    option count
  - SetRule: multi-select toggle plus cap, bounded by the option count

Validation happens before any mutation, so a rejected operation leaves the
document byte-for-byte unchanged. Every successful mutation ends in a
store save; the editor itself holds no state.
*/
package configedit
