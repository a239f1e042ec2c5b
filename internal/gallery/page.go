package gallery

import (
	"strconv"
	"strings"

	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/mdc"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// MountID is the id of the element the page is rendered into.
const MountID = "gallery"

// sections collects child components. After the first error every
// further call returns nil, and err reports the error.
type sections struct {
	s   *component.Scope
	err error
}

func child[P any](b *sections, key string, fn component.Func[P], props P) *vdom.VNode {
	if b.err != nil {
		return nil
	}
	n, err := component.Child(b.s, key, fn, props)
	if err != nil {
		b.err = err
	}
	return n
}

func section(title string, children ...any) *vdom.VNode {
	return vdom.Section(
		vdom.Class("gallery-section"),
		vdom.H2(vdom.Class("mdc-typography--headline6"), title),
		vdom.Div(append([]any{vdom.Class("gallery-section__body")}, children...)...),
	)
}

// Page renders the gallery: one section per component family, all bound
// to the state in g.
func Page(s *component.Scope, g *Gallery) (*vdom.VNode, error) {
	b := &sections{s: s}

	buttons := section("Buttons",
		child(b, "button-text", mdc.Button, mdc.ButtonProps{
			Label:   "Clicked " + strconv.Itoa(g.Clicks) + " times",
			OnClick: g.click,
			Attrs:   []vdom.Attr{vdom.Data("action", "count")},
		}),
		child(b, "button-open", mdc.Button, mdc.ButtonProps{
			Label:     "Open dialog",
			Variation: mdc.ButtonOutlined,
			OnClick:   g.openDialog,
			Attrs:     []vdom.Attr{vdom.Data("action", "open-dialog")},
		}),
		child(b, "button-save", mdc.Button, mdc.ButtonProps{
			Label:         "Save",
			Icon:          "save",
			Variation:     mdc.ButtonContained,
			SupportsTouch: true,
			OnClick:       g.save,
			Attrs:         []vdom.Attr{vdom.Data("action", "save")},
		}),
		child(b, "favorite", mdc.IconToggle, mdc.IconToggleProps{
			OnIcon:    "favorite",
			OffIcon:   "favorite_border",
			IconClass: "material-icons",
			IsOn:      g.Favorite,
			LabelOn:   "Remove from favorites",
			LabelOff:  "Add to favorites",
			OnChange:  g.favoriteChanged,
		}),
		child(b, "tooltip", mdc.Tooltip, mdc.TooltipProps{
			ID:   "gallery-tooltip",
			Text: "Deletes the selected planets",
			Anchor: []*vdom.VNode{child(b, "delete", mdc.IconButton, mdc.IconButtonProps{
				Icon:    "delete",
				OnClick: g.confirmDelete,
				Attrs:   []vdom.Attr{vdom.AriaLabel("Delete"), vdom.Data("action", "delete")},
			})},
		}),
	)

	form := section("Form controls",
		child(b, "name", mdc.TextField, mdc.TextFieldProps{
			ID:                      "gallery-name",
			Label:                   "Name",
			Value:                   &g.Name,
			Variation:               mdc.TextFieldOutlined,
			HelperText:              "Discarded when the dialog is confirmed",
			ShowsHelperPersistently: true,
			OnInput:                 g.nameInput,
		}),
		child(b, "subscribe", mdc.Checkbox, mdc.CheckboxProps{
			ID:       "gallery-subscribe",
			Label:    "Subscribe to updates",
			Checked:  g.Subscribed,
			OnChange: func(vdom.Event) { g.toggleSubscribed() },
		}),
		sizes(b, g),
		child(b, "fruit", mdc.Select, mdc.SelectProps{
			Label:     "Fruit",
			Items:     mdc.StringItems("apple", "banana", "cherry"),
			Value:     &g.Fruit,
			Variation: mdc.SelectFilled,
			OnChange:  g.fruitChanged,
		}),
	)

	tabs := make([]mdc.TabProps, len(Tabs))
	for i, label := range Tabs {
		tabs[i] = mdc.TabProps{Label: label}
	}
	navigation := section("Tabs",
		child(b, "tabs", mdc.TabBar, mdc.TabBarProps{
			Tabs:        tabs,
			ActiveTab:   &g.ActiveTab,
			OnActivated: g.tabActivated,
		}),
		vdom.P(vdom.Class("gallery-tab-content"), "Showing: "+Tabs[g.ActiveTab]),
	)

	data := section("Data table",
		child(b, "planets", mdc.DataTable[Planet], planetTable(g)),
		vdom.P(vdom.Class("gallery-selection"), selectionLabel(g)),
	)

	overlays := vdom.Fragment(
		child(b, "dialog", mdc.Dialog, mdc.DialogProps{
			Title: "Discard draft?",
			Buttons: []mdc.DialogButton{
				{Action: "cancel", Label: "Cancel", IsDefault: true},
				{Action: "discard", Label: "Discard"},
			},
			Content: []*vdom.VNode{vdom.P("The name you typed will be cleared.")},
			IsOpen:  g.DialogOpen,
			OpenHandlers: binding.OpenHandlers{
				OnClosing: g.dialogClosing,
			},
		}),
		child(b, "alert", mdc.AlertDialog, mdc.AlertDialogProps{
			Content: "Delete " + strings.Join(g.SelectedNames(), ", ") + "?",
			Buttons: []mdc.DialogButton{
				{Action: "cancel", Label: "Cancel"},
				{Action: "delete", Label: "Delete", IsDefault: true},
			},
			IsOpen: g.AlertOpen,
			OpenHandlers: binding.OpenHandlers{
				OnClosing: g.alertClosing,
			},
		}),
		child(b, "snackbar", mdc.Snackbar, mdc.SnackbarProps{
			Label:       "Saved " + strconv.Itoa(g.Saves) + " times",
			ActionLabel: "Undo",
			IsOpen:      g.SnackbarOpen,
			TimeoutMs:   4000,
			OpenHandlers: binding.OpenHandlers{
				OnClosing: g.snackbarClosing,
			},
		}),
	)
	if b.err != nil {
		return nil, b.err
	}

	var status string
	if g.LastAction != "" {
		status = "Last dialog action: " + g.LastAction
	}
	return vdom.Main(
		vdom.Class("gallery", "mdc-typography"),
		vdom.H1(vdom.Class("mdc-typography--headline4"), "Material Components"),
		vdom.If(status != "", vdom.P(vdom.Class("gallery-status"), status)),
		buttons,
		form,
		navigation,
		data,
		overlays,
	), nil
}

func sizes(b *sections, g *Gallery) *vdom.VNode {
	radios := make([]*vdom.VNode, 0, 3)
	for _, size := range []string{"small", "medium", "large"} {
		radios = append(radios, child(b, "size-"+size, mdc.Radio, mdc.RadioProps{
			ID:       "gallery-size-" + size,
			Name:     "size",
			Value:    size,
			Label:    strings.ToUpper(size[:1]) + size[1:],
			Checked:  g.Size == size,
			OnChange: func(vdom.Event) { g.Size = size },
		}))
	}
	return vdom.Div(vdom.Class("gallery-radios"), vdom.Role("radiogroup"), radios)
}

func planetTable(g *Gallery) mdc.DataTableProps[Planet] {
	status := func(key string) mdc.SortStatus {
		if g.SortColumn == key {
			return g.Sort
		}
		return mdc.Unsorted
	}
	return mdc.DataTableProps[Planet]{
		Columns: []mdc.Column[Planet]{
			{
				Key:         "name",
				Header:      "Planet",
				Text:        func(p Planet) string { return p.Name },
				IsRowHeader: true,
				IsSortable:  true,
				SortStatus:  status("name"),
			},
			{
				Key:        "radius",
				Header:     "Radius (km)",
				Text:       func(p Planet) string { return strconv.Itoa(p.Radius) },
				IsNumeric:  true,
				IsSortable: true,
				SortStatus: status("radius"),
			},
			{
				Key:       "moons",
				Header:    "Moons",
				Text:      func(p Planet) string { return strconv.Itoa(p.Moons) },
				IsNumeric: true,
			},
		},
		Rows:                  g.Rows(),
		RowKey:                func(p Planet) string { return p.Name },
		UsesRowSelection:      true,
		Selected:              func(p Planet) bool { return g.Selected[p.Name] },
		AriaLabel:             "Planets",
		OnRowSelectionChanged: g.rowSelectionChanged,
		OnSelectedAll:         func(widget.Event) { g.selectPage(true) },
		OnUnselectedAll:       func(widget.Event) { g.selectPage(false) },
		OnSorted:              g.sortChanged,
		Pagination: &mdc.PaginationProps{
			RowsPerPageLabel:  "Rows per page",
			RowsCounts:        []int{3, 5, 10},
			RowsCount:         g.PageSize,
			Label:             g.rangeLabel(),
			IsFirstPage:       g.Page == 0,
			IsLastPage:        g.Page >= g.PageCount()-1,
			OnChangeRowsCount: g.rowsCountChanged,
			OnFirstPage:       g.firstPage,
			OnPrevPage:        g.prevPage,
			OnNextPage:        g.nextPage,
			OnLastPage:        g.lastPage,
		},
	}
}

func selectionLabel(g *Gallery) string {
	names := g.SelectedNames()
	if len(names) == 0 {
		return "No planets selected"
	}
	return "Selected: " + strings.Join(names, ", ")
}
