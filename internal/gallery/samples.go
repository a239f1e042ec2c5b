package gallery

import (
	"context"
	"strings"

	"github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/mdc"
	"github.com/vango-dev/mdc/pkg/vdom"
)

// Sample is a component rendered with representative props.
type Sample struct {
	Name        string
	Description string
	render      func(ctx context.Context) (*vdom.VNode, error)
}

// Render returns the server-side markup of the sample. No widget is
// constructed; elements carry their data-mdc-ref attributes.
func (s Sample) Render(ctx context.Context) (*vdom.VNode, error) {
	return s.render(ctx)
}

func sample[P any](name, description string, fn component.Func[P], props P) Sample {
	return Sample{
		Name:        name,
		Description: description,
		render: func(ctx context.Context) (*vdom.VNode, error) {
			return component.Static(ctx, fn, props, component.WithName(name))
		},
	}
}

// Samples returns one sample per component, sorted by name.
func Samples() []Sample {
	g := New()
	return []Sample{
		sample("alert-dialog", "Dialog without title", mdc.AlertDialog, mdc.AlertDialogProps{
			Content: "Discard draft?",
			Buttons: []mdc.DialogButton{{Action: "cancel", Label: "Cancel"}, {Action: "discard", Label: "Discard", IsDefault: true}},
		}),
		sample("button", "Contained button with icon", mdc.Button, mdc.ButtonProps{
			Label: "Save", Icon: "save", Variation: mdc.ButtonContained,
		}),
		sample("checkbox", "Labeled checkbox", mdc.Checkbox, mdc.CheckboxProps{
			ID: "sample-checkbox", Label: "Subscribe", Checked: true,
		}),
		sample("data-table", "Sortable data table with row selection and pagination", mdc.DataTable[Planet], planetTable(g)),
		sample("dialog", "Dialog with title and actions", mdc.Dialog, mdc.DialogProps{
			Title:   "Use location service?",
			Content: []*vdom.VNode{vdom.P("Anonymous location data will be sent.")},
			Buttons: []mdc.DialogButton{{Action: "cancel", Label: "Disagree"}, {Action: "accept", Label: "Agree", IsDefault: true}},
		}),
		sample("icon-button", "Icon button", mdc.IconButton, mdc.IconButtonProps{
			Icon: "delete", Attrs: []vdom.Attr{vdom.AriaLabel("Delete")},
		}),
		sample("icon-toggle", "Icon button toggle", mdc.IconToggle, mdc.IconToggleProps{
			OnIcon: "favorite", OffIcon: "favorite_border", IconClass: "material-icons",
			LabelOn: "Remove from favorites", LabelOff: "Add to favorites",
		}),
		sample("pagination", "Data table pagination", mdc.Pagination, mdc.PaginationProps{
			RowsPerPageLabel: "Rows per page", Label: "1-10 of 100", IsFirstPage: true,
		}),
		sample("radio", "Labeled radio button", mdc.Radio, mdc.RadioProps{
			ID: "sample-radio", Name: "size", Value: "small", Label: "Small",
		}),
		sample("select", "Outlined select", mdc.Select, mdc.SelectProps{
			Label: "Fruit", Items: mdc.StringItems("apple", "banana", "cherry"), Variation: mdc.SelectOutlined,
		}),
		sample("snackbar", "Snackbar with action", mdc.Snackbar, mdc.SnackbarProps{
			Label: "Draft saved", ActionLabel: "Undo",
		}),
		sample("tab", "Single tab", mdc.Tab, mdc.TabProps{Label: "Favorites", Icon: "favorite", Active: true}),
		sample("tab-bar", "Tab bar", mdc.TabBar, mdc.TabBarProps{
			Tabs: []mdc.TabProps{{Label: "Recents"}, {Label: "Nearby"}, {Label: "Favorites"}},
		}),
		sample("text-field", "Filled text field with helper text", mdc.TextField, mdc.TextFieldProps{
			ID: "sample-text-field", Label: "Name", HelperText: "Your full name",
		}),
		sample("tooltip", "Tooltip on a button", mdc.Tooltip, mdc.TooltipProps{
			ID:     "sample-tooltip",
			Text:   "Deletes the item",
			Anchor: []*vdom.VNode{vdom.Button(vdom.Class("mdc-button"), "Delete")},
		}),
	}
}

// Lookup returns the sample named name.
func Lookup(name string) (Sample, error) {
	samples := Samples()
	names := make([]string, len(samples))
	for i, s := range samples {
		if s.Name == name {
			return s, nil
		}
		names[i] = s.Name
	}
	return Sample{}, errors.New("E140").
		WithDetail("No component named " + name).
		WithSuggestion("Available components: " + strings.Join(names, ", "))
}
