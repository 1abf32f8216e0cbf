package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/contentadmin/internal/services/admin/confirmtoggle"
)

// PendingField names the form field the confirmation dialog posts with the
// value it was rendered for.
const PendingField = "pending"

// ToggleActions holds the HTMX endpoints driving a confirmation toggle.
type ToggleActions struct {
	// ChangeURL receives requested values as the "value" form field.
	ChangeURL string
	// ConfirmURL commits a pending disable.
	ConfirmURL string
	// CancelURL dismisses a pending disable.
	CancelURL string
}

// ToggleContainerID returns the element id wrapping a toggle.
func ToggleContainerID(name string) string {
	return domID("toggle-", name)
}

// ConfirmToggle renders a labeled checkbox and, while a disable is pending,
// the confirmation dialog.
func ConfirmToggle(view confirmtoggle.View, actions ToggleActions) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		containerID := ToggleContainerID(view.Name)
		target := "#" + containerID
		next := strconv.FormatBool(!view.Checked)

		h.raw(`<div`)
		h.attr("id", containerID)
		h.raw(` class="form-control">`)
		h.raw(`<label class="label cursor-pointer justify-start gap-3"`)
		h.attr("for", view.ID)
		h.raw(`><input type="checkbox" class="checkbox"`)
		h.attr("id", view.ID)
		h.attr("name", view.Name)
		h.raw(` value="true"`)
		h.boolAttr("checked", view.Checked)
		if actions.ChangeURL != "" {
			h.attr("hx-post", actions.ChangeURL)
			h.raw(` hx-trigger="change"`)
			h.attr("hx-vals", `{"value":"`+next+`"}`)
			h.attr("hx-target", target)
			h.raw(` hx-swap="outerHTML"`)
		}
		h.raw(`><span class="label-text">`)
		h.text(view.Label)
		h.raw(`</span></label>`)
		if view.Hint != "" {
			h.raw(`<p class="text-sm opacity-70"`)
			h.attr("id", view.ID+"-hint")
			h.raw(`>`)
			h.text(view.Hint)
			h.raw(`</p>`)
		}
		if view.DialogOpen {
			writeConfirmDialog(h, view, actions, target)
		}
		h.raw(`</div>`)
		return h.err
	})
}

func writeConfirmDialog(h *htmlWriter, view confirmtoggle.View, actions ToggleActions, target string) {
	titleID := view.ID + "-confirm-title"
	descriptionID := view.ID + "-confirm-description"
	pending := `{"` + PendingField + `":"` + strconv.FormatBool(view.Checked) + `"}`
	h.raw(`<dialog open class="modal modal-open" role="alertdialog"`)
	h.attr("aria-labelledby", titleID)
	h.attr("aria-describedby", descriptionID)
	h.raw(`><div class="modal-box">`)
	h.raw(`<h3 class="text-lg font-bold"`)
	h.attr("id", titleID)
	h.raw(`>`)
	h.text(view.DialogTitle)
	h.raw(`</h3><div class="flex flex-col gap-2 py-4 text-center">`)
	h.raw(`<p`)
	h.attr("id", descriptionID)
	h.raw(`>`)
	h.text(view.DialogContent)
	h.raw(`</p><p class="font-bold">`)
	h.text(view.DialogBody)
	h.raw(`</p></div><div class="modal-action">`)
	h.raw(`<button type="button" class="btn btn-ghost" data-action="cancel"`)
	if actions.CancelURL != "" {
		h.attr("hx-post", actions.CancelURL)
		h.attr("hx-vals", pending)
		h.attr("hx-target", target)
		h.raw(` hx-swap="outerHTML"`)
	}
	h.raw(`>`)
	h.text(view.CancelLabel)
	h.raw(`</button><button type="button" class="btn btn-error btn-outline" data-action="confirm"`)
	if actions.ConfirmURL != "" {
		h.attr("hx-post", actions.ConfirmURL)
		h.attr("hx-vals", pending)
		h.attr("hx-target", target)
		h.raw(` hx-swap="outerHTML"`)
	}
	h.raw(`>`)
	h.text(view.ConfirmLabel)
	h.raw(`</button></div></div></dialog>`)
}
