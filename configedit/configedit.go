package configedit

import (
	"log/slog"
	"strings"

	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/notify"
	"github.com/pollbox/pollbox/store"
)

// MaxPasswordLen is the upper bound on admin passwords.
const MaxPasswordLen = 8

// Notifier receives the new password after a successful change.
// Delivery is best-effort: a failed or skipped notification never rolls
// the change back.
type Notifier interface {
	PasswordChanged(newPassword string) (notify.Outcome, error)
}

// Editor validates and applies configuration changes against the store.
// It holds no state of its own; every successful mutation ends in a save.
// A rejected operation leaves the document unchanged.
type Editor struct {
	store    *store.Store
	notifier Notifier
}

// New builds an Editor. notifier may be nil, in which case password
// changes are applied without notification.
func New(st *store.Store, notifier Notifier) *Editor {
	return &Editor{store: st, notifier: notifier}
}

// SetTitle replaces the poll title. Empty or whitespace-only titles are
// rejected.
func (e *Editor) SetTitle(doc *models.PollDocument, title string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("title", "must not be empty")
	}
	doc.Title = title
	return e.store.Save(doc)
}

// SetPassword replaces the admin password and signals the notifier.
// The password must be 1-8 characters with at least one ASCII letter and
// one digit. The notification outcome is returned alongside; notifier
// failure is reported there, never as the error.
func (e *Editor) SetPassword(doc *models.PollDocument, password string) (notify.Outcome, error) {
	if err := validatePassword(password); err != nil {
		return notify.Skipped, err
	}
	doc.Password = password
	if err := e.store.Save(doc); err != nil {
		return notify.Skipped, err
	}

	if e.notifier == nil {
		return notify.Skipped, nil
	}
	outcome, err := e.notifier.PasswordChanged(password)
	if err != nil {
		slog.Warn("password updated but notification failed", "error", err)
	}
	return outcome, nil
}

// AddOption appends a new option. Duplicates are silently rejected: the
// call returns false and the document is untouched. Empty or
// whitespace-only labels are a validation error.
func (e *Editor) AddOption(doc *models.PollDocument, label string) (bool, error) {
	if strings.TrimSpace(label) == "" {
		return false, models.NewValidationError("label", "must not be empty")
	}
	for _, opt := range doc.Options {
		if opt == label {
			return false, nil
		}
	}
	doc.Options = append(doc.Options, label)
	if err := e.store.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveOption deletes the option at index. If the removal leaves fewer
// options than maxSelections allows, maxSelections is clamped down to the
// new option count immediately, so it never references more options than
// exist.
func (e *Editor) RemoveOption(doc *models.PollDocument, index int) error {
	if index < 0 || index >= len(doc.Options) {
		return models.NewValidationError("index", "option index out of range")
	}
	doc.Options = append(doc.Options[:index], doc.Options[index+1:]...)
	if doc.Config.MaxSelections > len(doc.Options) {
		clamped := len(doc.Options)
		if clamped < 1 {
			clamped = 1
		}
		doc.Config.MaxSelections = clamped
	}
	return e.store.Save(doc)
}

// SetRule updates the voting mode and the multi-select cap. maxSelections
// must be at least 1 and no greater than the current option count (1 when
// the option list is empty).
func (e *Editor) SetRule(doc *models.PollDocument, enableMulti bool, maxSelections int) error {
	if maxSelections < 1 {
		return models.NewValidationError("maxSelections", "must be at least 1")
	}
	upper := len(doc.Options)
	if upper == 0 {
		upper = 1
	}
	if maxSelections > upper {
		return models.NewValidationError("maxSelections", "must not exceed the number of options")
	}
	doc.Config.EnableMultiSelect = enableMulti
	doc.Config.MaxSelections = maxSelections
	return e.store.Save(doc)
}

func validatePassword(password string) error {
	if len(password) == 0 {
		return models.NewValidationError("password", "must not be empty")
	}
	if len(password) > MaxPasswordLen {
		return models.NewValidationError("password", "must be at most 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, c := range password {
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return models.NewValidationError("password", "must contain at least one letter and one digit")
	}
	return nil
}
