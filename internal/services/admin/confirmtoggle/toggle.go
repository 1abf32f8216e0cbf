package confirmtoggle

import (
	"strings"

	apperrors "github.com/louisbranch/contentadmin/internal/platform/errors"
)

// KindCheckbox is the only change kind emitted by the toggle.
const KindCheckbox = "checkbox"

// State is the confirmation state of a toggle.
type State int

const (
	// StateIdle means no confirmation surface is shown.
	StateIdle State = iota
	// StatePendingConfirmation means a disable request awaits confirmation.
	StatePendingConfirmation
)

// String returns a log-friendly state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingConfirmation:
		return "pending_confirmation"
	default:
		return "unknown"
	}
}

// ChangeEvent is the payload delivered to OnChange when a value is committed.
type ChangeEvent struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
	Kind  string `json:"kind"`
}

// Message identifies a display string by catalog id with a default text.
type Message struct {
	ID      string
	Default string
	Values  map[string]any
}

// IsZero reports whether the message carries neither id nor default text.
func (m Message) IsZero() bool {
	return strings.TrimSpace(m.ID) == "" && strings.TrimSpace(m.Default) == ""
}

// Config holds the render-time inputs of a toggle.
type Config struct {
	Name       string
	Label      Message
	Hint       Message
	Value      bool
	IsCreating bool
	OnChange   func(ChangeEvent)
}

// Toggle is a two-state confirmation machine around a caller-owned boolean.
//
// A Toggle is driven by a single event loop and is not safe for concurrent use.
type Toggle struct {
	cfg   Config
	state State
}

// New validates cfg and returns an idle toggle.
func New(cfg Config) (*Toggle, error) {
	cfg.Name = strings.TrimSpace(cfg.Name)
	if cfg.Name == "" {
		return nil, misconfigured("name", "toggle name is required")
	}
	if cfg.OnChange == nil {
		return nil, misconfigured("on_change", "toggle change callback is required")
	}
	if cfg.Label.IsZero() {
		return nil, misconfigured("label", "toggle label needs an id or default text")
	}
	return &Toggle{cfg: cfg, state: StateIdle}, nil
}

// MustNew is New for wiring that is fixed at build time. It panics on a
// misconfigured caller.
func MustNew(cfg Config) *Toggle {
	t, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

func misconfigured(field string, message string) error {
	return apperrors.WithMetadata(apperrors.CodeToggleMisconfigured, message, map[string]string{"Field": field})
}

// Name returns the field name the toggle reports changes for.
func (t *Toggle) Name() string {
	return t.cfg.Name
}

// Value returns the committed value supplied by the caller.
func (t *Toggle) Value() bool {
	return t.cfg.Value
}

// IsCreating reports whether confirmation is bypassed.
func (t *Toggle) IsCreating() bool {
	return t.cfg.IsCreating
}

// State returns the current confirmation state.
func (t *Toggle) State() State {
	return t.state
}

// Pending reports whether the confirmation surface is open.
func (t *Toggle) Pending() bool {
	return t.state == StatePendingConfirmation
}

// RequestChange asks for the value to become next. Enabling, or any change
// in creating mode, commits immediately; disabling opens the confirmation.
func (t *Toggle) RequestChange(next bool) {
	if t.cfg.IsCreating || next {
		t.commit(next)
		return
	}
	t.state = StatePendingConfirmation
}

// ConfirmDisable commits the pending disable. It does nothing when idle.
func (t *Toggle) ConfirmDisable() {
	if t.state != StatePendingConfirmation {
		return
	}
	t.commit(false)
	t.state = StateIdle
}

// CancelDisable closes the confirmation without committing.
func (t *Toggle) CancelDisable() {
	t.state = StateIdle
}

// Dismiss is CancelDisable for surfaces closed without an explicit action.
func (t *Toggle) Dismiss() {
	t.CancelDisable()
}

// Sync replaces the caller-owned value after the caller applied a commit.
func (t *Toggle) Sync(value bool) {
	t.cfg.Value = value
}

func (t *Toggle) commit(value bool) {
	t.cfg.OnChange(ChangeEvent{Name: t.cfg.Name, Value: value, Kind: KindCheckbox})
}
