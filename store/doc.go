/*
Package store persists the poll document as a single human-readable JSON
file.

# Lifecycle

The document is created once from the default seed on first Load, then
loaded, mutated, and saved on every admin or voter action. It is never
deleted; only the vote log is ever cleared.

	st := store.Open("polling_data.json")
	doc, err := st.Load()
	vote, err := st.RecordVote(doc, models.Single("全體參與"))

# Degraded Mode

A missing file is seeded and persisted. An unreadable or corrupt file logs
a warning and falls back to the in-memory default seed without persisting,
matching the tolerance of the original app for damaged state. Write
failures surface as StorageError and are fatal to the attempted action.

# Durability

Save writes the whole document to a temp file in the same directory and
renames it into place, so a crash mid-write never leaves a truncated
document. There is no cross-process lock: the design assumes a single
active process, and two simultaneous writers can race (last save wins).
*/
package store
