package mdctest

import (
	"strings"

	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// Click presses the dialog button carrying data-mdc-dialog-action=action,
// closing the dialog with that action.
func (h *Handle) Click(action string) error {
	h.mustBe(widget.KindDialog)
	return h.close(action)
}

// ClickAction presses the snackbar action button.
func (h *Handle) ClickAction() error {
	h.mustBe(widget.KindSnackbar)
	return h.close("action")
}

// OpenMenu opens the menu of a select, as a click on its anchor would.
// No event is emitted.
func (h *Handle) OpenMenu() {
	h.mustBe(widget.KindSelect)
	h.mu.Lock()
	h.fields["menuOpen"] = true
	h.mu.Unlock()
}

// MenuOpen reports whether the menu of a select is open.
func (h *Handle) MenuOpen() bool {
	h.mustBe(widget.KindSelect)
	h.mu.Lock()
	defer h.mu.Unlock()
	open, _ := h.fields["menuOpen"].(bool)
	return open
}

// SelectItem picks the menu item at index, as a user would, and closes
// the menu. The menu need not be opened first.
func (h *Handle) SelectItem(value string, index int) {
	h.mustBe(widget.KindSelect)
	h.mu.Lock()
	h.fields["value"] = value
	h.fields["selectedIndex"] = index
	h.fields["menuOpen"] = false
	h.mu.Unlock()
	h.Emit(widget.EventChange, map[string]any{"value": value, "index": index})
}

// Activate activates the tab at index.
func (h *Handle) Activate(index int) {
	h.mustBe(widget.KindTabBar)
	h.mu.Lock()
	h.fields["activeTab"] = index
	h.mu.Unlock()
	h.Emit(widget.EventActivated, map[string]any{"index": index})
}

// Toggle flips an icon button toggle.
func (h *Handle) Toggle() {
	h.mustBe(widget.KindIconButtonToggle)
	h.mu.Lock()
	on, _ := h.fields["on"].(bool)
	on = !on
	h.fields["on"] = on
	h.mu.Unlock()
	h.Emit(widget.EventChange, map[string]any{"isOn": on})
}

// SetRows declares the row ids of a data table, in display order.
func (h *Handle) SetRows(ids ...string) {
	h.mustBe(widget.KindDataTable)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rows = append([]string(nil), ids...)
}

// LoadRows reads the rows of a data table from tree the way the browser
// widget reads them from the DOM: every element carrying data-row-id below
// the handle's root is a row, selected when it has the
// mdc-data-table__row--selected class.
func (h *Handle) LoadRows(tree *vdom.VNode) {
	h.mustBe(widget.KindDataTable)
	var rows []string
	selected := make(map[string]bool)
	tree.Walk(func(n *vdom.VNode) bool {
		if ref, _ := n.Props["data-mdc-ref"].(string); ref != h.root.ID {
			return true
		}
		n.Walk(func(row *vdom.VNode) bool {
			id, ok := row.Props["data-row-id"].(string)
			if !ok {
				return true
			}
			rows = append(rows, id)
			class, _ := row.Props["class"].(string)
			selected[id] = hasAll(strings.Fields(class), []string{"mdc-data-table__row--selected"})
			return false
		})
		return false
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.rows = rows
	h.selected = selected
}

// ClickRowCheckbox toggles the selection checkbox of a row.
func (h *Handle) ClickRowCheckbox(rowID string) {
	h.mustBe(widget.KindDataTable)
	h.mu.Lock()
	index := -1
	for i, id := range h.rows {
		if id == rowID {
			index = i
		}
	}
	selected := !h.selected[rowID]
	h.selected[rowID] = selected
	h.mu.Unlock()
	h.Emit(widget.EventRowSelectionChanged, map[string]any{
		"rowId":    rowID,
		"rowIndex": index,
		"selected": selected,
	})
}

// ClickHeaderCheckbox toggles the select-all checkbox: unchecked and
// indeterminate headers select every row, a checked header clears them.
func (h *Handle) ClickHeaderCheckbox() {
	h.mustBe(widget.KindDataTable)
	selectAll := h.HeaderState() != "checked"
	h.mu.Lock()
	for _, id := range h.rows {
		h.selected[id] = selectAll
	}
	h.mu.Unlock()
	if selectAll {
		h.Emit(widget.EventSelectedAll, map[string]any{})
	} else {
		h.Emit(widget.EventUnselectedAll, map[string]any{})
	}
}

// HeaderState is "checked", "unchecked" or "indeterminate".
func (h *Handle) HeaderState() string {
	h.mustBe(widget.KindDataTable)
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, id := range h.rows {
		if h.selected[id] {
			n++
		}
	}
	switch {
	case n == 0:
		return "unchecked"
	case n == len(h.rows):
		return "checked"
	default:
		return "indeterminate"
	}
}

// SelectedRows returns the selected row ids in display order.
func (h *Handle) SelectedRows() []string {
	h.mustBe(widget.KindDataTable)
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, id := range h.rows {
		if h.selected[id] {
			out = append(out, id)
		}
	}
	return out
}

// Sort clicks the sort button of a column.
func (h *Handle) Sort(columnID string, columnIndex int, descending bool) {
	h.mustBe(widget.KindDataTable)
	sortValue := "ascending"
	if descending {
		sortValue = "descending"
	}
	h.Emit(widget.EventSorted, map[string]any{
		"columnId":    columnID,
		"columnIndex": columnIndex,
		"sortValue":   sortValue,
	})
}
