/*
Package models defines the persisted poll document, request/response types,
and the error taxonomy shared across the server.

# Domain Types

The single source of truth is PollDocument, one JSON document holding:

  - Title: poll headline shown to respondents
  - Password: plaintext admin password (1-8 chars, letter + digit when
    changed; the seeded default is exempt)
  - Config: PollConfig (enableMultiSelect, maxSelections)
  - Options: ordered, unique option names
  - Votes: append-only vote log, insertion order = submission order

Vote.Option is a Selection, a tagged union of a single option name or an
ordered list of names. Its JSON form matches the persisted schema: a bare
string for single-select submissions, an array for multi-select ones.
A vote may reference an option that was later removed; aggregation treats
such entries as absent from the current tally, not as errors.

Documents written before the config field existed load with the default
config applied.

# Error Taxonomy

Three error types cross package boundaries:

  - ValidationError: bad user input; the document stays unchanged
  - StorageError: persistence failed; in-memory state is NOT rolled back
  - NotifierError: mail delivery failed; never reverses a password change

All three support errors.As, which is how the HTTP layer picks status
codes.
*/
package models
