package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/louisbranch/contentadmin/internal/platform/timeouts"
	"github.com/louisbranch/contentadmin/internal/services/admin/confirmtoggle"
	"github.com/louisbranch/contentadmin/internal/services/admin/storage"
	"golang.org/x/text/message"
)

// Localizer resolves toggle messages and console captions.
type Localizer interface {
	confirmtoggle.Resolver
	Sprintf(key message.Reference, args ...any) string
}

// Config holds the collaborators of the console model.
type Config struct {
	Store         storage.ContentTypeStore
	DefaultLocale string
	Localizer     Localizer
	KeyMap        KeyMap
}

type loadedMsg struct {
	items []storage.ContentType
}

type committedMsg struct {
	change storage.LocalizationChange
}

type errMsg struct {
	err error
}

// Model is the bubbletea model listing content types with a localization
// toggle on the selected row.
type Model struct {
	store         storage.ContentTypeStore
	defaultLocale string
	loc           Localizer
	keys          KeyMap

	items     []storage.ContentType
	cursor    int
	toggle    *confirmtoggle.Toggle
	requested []confirmtoggle.ChangeEvent
	// committing is set while a commit command is in flight; toggle and
	// confirm keys are ignored until its result arrives.
	committing bool
	loading    bool
	status     string
	err        error
}

// NewModel validates cfg and returns a console model.
func NewModel(cfg Config) (*Model, error) {
	if cfg.Store == nil {
		return nil, errors.New("console store is required")
	}
	if cfg.Localizer == nil {
		return nil, errors.New("console localizer is required")
	}
	keys := cfg.KeyMap
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	defaultLocale := strings.TrimSpace(cfg.DefaultLocale)
	if defaultLocale == "" {
		return nil, errors.New("default locale is required")
	}
	return &Model{
		store:         cfg.Store,
		defaultLocale: defaultLocale,
		loc:           cfg.Localizer,
		keys:          keys,
		loading:       true,
	}, nil
}

// Init loads the content types.
func (m *Model) Init() tea.Cmd {
	return m.load
}

// Update handles key presses and store results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.err = nil
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = max(len(m.items)-1, 0)
		}
		m.selectCurrent()
		return m, nil
	case committedMsg:
		m.committing = false
		m.applyCommit(msg.change)
		return m, nil
	case errMsg:
		m.committing = false
		m.err = msg.err
		log.Printf("console: %v", msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.toggle != nil && m.toggle.Pending() {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			if m.committing {
				return m, nil
			}
			m.toggle.ConfirmDisable()
			return m, m.flush()
		case key.Matches(msg, m.keys.Cancel):
			m.toggle.CancelDisable()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.selectCurrent()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.selectCurrent()
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.toggle != nil && !m.committing {
			m.toggle.RequestChange(!m.toggle.Value())
			return m, m.flush()
		}
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.load
	}
	return m, nil
}

// selectCurrent rebuilds the toggle for the row under the cursor.
func (m *Model) selectCurrent() {
	m.toggle = nil
	m.requested = nil
	if len(m.items) == 0 {
		return
	}
	item := m.items[m.cursor]
	label := strings.TrimSpace(item.DisplayName)
	if label == "" {
		label = item.UID
	}
	toggle, err := confirmtoggle.New(confirmtoggle.Config{
		Name:     item.UID,
		Label:    confirmtoggle.Message{Default: label},
		Value:    item.Localized,
		OnChange: m.onChange,
	})
	if err != nil {
		m.err = err
		return
	}
	m.toggle = toggle
}

func (m *Model) onChange(event confirmtoggle.ChangeEvent) {
	m.requested = append(m.requested, event)
}

// flush turns the events requested by the toggle into store commands.
func (m *Model) flush() tea.Cmd {
	if len(m.requested) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.requested))
	for _, event := range m.requested {
		cmds = append(cmds, m.commit(event))
	}
	m.requested = nil
	m.committing = true
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func (m *Model) commit(event confirmtoggle.ChangeEvent) tea.Cmd {
	store := m.store
	defaultLocale := m.defaultLocale
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.StoreOp)
		defer cancel()
		change, err := store.SetLocalized(ctx, event.Name, event.Value, defaultLocale)
		if err != nil {
			return errMsg{err: fmt.Errorf("commit %s: %w", event.Name, err)}
		}
		return committedMsg{change: change}
	}
}

func (m *Model) load() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.StoreOp)
	defer cancel()
	items, err := m.store.ListContentTypes(ctx)
	if err != nil {
		return errMsg{err: fmt.Errorf("list content types: %w", err)}
	}
	return loadedMsg{items: items}
}

func (m *Model) applyCommit(change storage.LocalizationChange) {
	for i := range m.items {
		if m.items[i].UID == change.UID {
			m.items[i].Localized = change.Localized
		}
	}
	if m.toggle != nil && m.toggle.Name() == change.UID {
		m.toggle.Sync(change.Localized)
	}
	m.err = nil
	m.status = fmt.Sprintf("%s localized=%t (%d entries deleted)", change.UID, change.Localized, change.DeletedEntries)
	log.Printf("console: %s", m.status)
}

// Selected returns the content type under the cursor.
func (m *Model) Selected() (storage.ContentType, bool) {
	if len(m.items) == 0 {
		return storage.ContentType{}, false
	}
	return m.items[m.cursor], true
}

// Pending reports whether a disable is waiting for confirmation.
func (m *Model) Pending() bool {
	return m.toggle != nil && m.toggle.Pending()
}
