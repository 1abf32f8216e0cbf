package confirmtoggle

import (
	"fmt"
	"strings"
)

// Catalog ids for the confirmation surface.
const (
	MessageDialogTitle   = "app.components.ConfirmDialog.title"
	MessageDialogContent = "i18n.CheckboxConfirmation.Modal.content"
	MessageDialogBody    = "i18n.CheckboxConfirmation.Modal.body"
	MessageCancel        = "components.popUpWarning.button.cancel"
	MessageConfirm       = "i18n.CheckboxConfirmation.Modal.button-confirm"
)

var (
	dialogTitle   = Message{ID: MessageDialogTitle, Default: "Confirmation"}
	dialogContent = Message{
		ID:      MessageDialogContent,
		Default: "Disabling localization will engender the deletion of all your content but the one associated to your default locale (if existing).",
	}
	dialogBody    = Message{ID: MessageDialogBody, Default: "Do you want to disable it?"}
	cancelAction  = Message{ID: MessageCancel, Default: "No, cancel"}
	confirmAction = Message{ID: MessageConfirm, Default: "Yes, disable"}
)

// Resolver turns a catalog message into display text.
type Resolver interface {
	Resolve(msg Message) string
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(msg Message) string

// Resolve calls f.
func (f ResolverFunc) Resolve(msg Message) string {
	return f(msg)
}

// Resolve resolves msg with r, falling back to the interpolated default text
// and then to the raw id when r is nil or yields nothing.
func Resolve(r Resolver, msg Message) string {
	if msg.IsZero() {
		return ""
	}
	if r != nil {
		if text := strings.TrimSpace(r.Resolve(msg)); text != "" {
			return text
		}
	}
	if strings.TrimSpace(msg.Default) != "" {
		return Interpolate(msg.Default, msg.Values)
	}
	return msg.ID
}

// Interpolate replaces {key} placeholders in text with values.
func Interpolate(text string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(text, "{") {
		return text
	}
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{"+key+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// View is the render model of a toggle.
type View struct {
	ID            string
	Name          string
	Label         string
	Hint          string
	Checked       bool
	DialogOpen    bool
	DialogTitle   string
	DialogContent string
	DialogBody    string
	CancelLabel   string
	ConfirmLabel  string
}

// View renders the toggle state into display strings.
func (t *Toggle) View(r Resolver) View {
	v := View{
		ID:      t.cfg.Name,
		Name:    t.cfg.Name,
		Label:   Resolve(r, t.cfg.Label),
		Hint:    Resolve(r, t.cfg.Hint),
		Checked: t.cfg.Value,
	}
	if t.state != StatePendingConfirmation {
		return v
	}
	v.DialogOpen = true
	v.DialogTitle = Resolve(r, dialogTitle)
	v.DialogContent = Resolve(r, dialogContent)
	v.DialogBody = Resolve(r, dialogBody)
	v.CancelLabel = Resolve(r, cancelAction)
	v.ConfirmLabel = Resolve(r, confirmAction)
	return v
}
