package mdc

import (
	"strconv"
	"strings"

	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// SortStatus is the sort state of a sortable column.
type SortStatus string

const (
	Unsorted       SortStatus = ""
	SortAscending  SortStatus = "ascending"
	SortDescending SortStatus = "descending"
)

// Column describes one column of a DataTable over rows of type R.
type Column[R any] struct {
	// Key identifies the column. Sortable columns report it as columnId
	// in sorted events.
	Key string

	Header string

	// Text returns the cell text. Render, when set, returns the cell
	// content instead.
	Text   func(row R) string
	Render func(row R) *vdom.VNode

	IsNumeric   bool
	IsRowHeader bool
	IsSortable  bool
	SortStatus  SortStatus

	// Class is added to header and body cells; HeaderClass and BodyClass
	// only to one of them.
	Class       string
	HeaderClass string
	BodyClass   string

	HeaderAttrs []vdom.Attr
	BodyAttrs   func(row R) []vdom.Attr
}

// DataTableProps configures DataTable.
type DataTableProps[R any] struct {
	Columns []Column[R]
	Rows    []R

	// RowKey identifies a row. It defaults to the row index.
	RowKey func(row R) string

	// UsesRowSelection adds a checkbox column. Selected reports the rows
	// rendered as selected.
	UsesRowSelection bool
	Selected         func(row R) bool

	// RowClass returns extra classes for a row.
	RowClass func(row R) string

	UsesStickyHeader bool
	OmitsHeaderRow   bool

	AriaLabel  string
	Class      string
	TableClass string

	// Pagination renders a Pagination below the table.
	Pagination *PaginationProps
	Children   []*vdom.VNode

	DataTableRef *component.Ref[widget.Handle]

	OnRowSelectionChanged func(widget.Event)
	OnSelectedAll         func(widget.Event)
	OnUnselectedAll       func(widget.Event)
	OnSorted              func(widget.Event)
	OnScroll              func(vdom.Event)
}

// DataTable renders an mdc-data-table. It is bound to an MDCDataTable only
// when a column is sortable or rows are selectable, and the widget is
// rebuilt whenever the rendered rows change.
func DataTable[R any](s *component.Scope, p DataTableProps[R]) (*vdom.VNode, error) {
	sortable := false
	for _, c := range p.Columns {
		sortable = sortable || c.IsSortable
	}
	bound := sortable || p.UsesRowSelection

	keys := make([]string, len(p.Rows))
	selected := make([]bool, len(p.Rows))
	for i, row := range p.Rows {
		keys[i] = strconv.Itoa(i)
		if p.RowKey != nil {
			keys[i] = p.RowKey(row)
		}
		selected[i] = p.UsesRowSelection && p.Selected != nil && p.Selected(row)
	}

	root := component.UseNodeRef(s)
	b := binding.UseWidget(s, widget.KindDataTable, root,
		binding.Disabled(!bound),
		binding.Into(p.DataTableRef),
		binding.SuppressDestroyErrors(),
		binding.RebuildOn(rowsDigest(keys, selected)),
	)
	binding.UseEvent(s, b, widget.EventRowSelectionChanged, when(p.UsesRowSelection, p.OnRowSelectionChanged))
	binding.UseEvent(s, b, widget.EventSelectedAll, when(p.UsesRowSelection, p.OnSelectedAll))
	binding.UseEvent(s, b, widget.EventUnselectedAll, when(p.UsesRowSelection, p.OnUnselectedAll))
	binding.UseEvent(s, b, widget.EventSorted, when(sortable, p.OnSorted))

	if len(p.Columns) == 0 {
		return nil, missing(s, "DataTable", "Columns")
	}

	var head *vdom.VNode
	if !p.OmitsHeaderRow {
		cells := make([]*vdom.VNode, 0, len(p.Columns)+1)
		if p.UsesRowSelection {
			box, err := component.Child(s, "select-all", Checkbox, CheckboxProps{
				Class:               "mdc-data-table__header-row-checkbox",
				DisablesMdcInstance: true,
				Attrs:               []vdom.Attr{vdom.AriaLabel("Toggle all rows")},
			})
			if err != nil {
				return nil, err
			}
			cells = append(cells, vdom.Th(
				vdom.Class("mdc-data-table__header-cell mdc-data-table__header-cell--checkbox"),
				vdom.Role("columnheader"),
				vdom.Scope("col"),
				box,
			))
		}
		for i, c := range p.Columns {
			cells = append(cells, headerCell(c, i))
		}
		head = vdom.Thead(vdom.Tr(vdom.Class("mdc-data-table__header-row"), cells))
	}

	rows := make([]*vdom.VNode, len(p.Rows))
	for i, row := range p.Rows {
		cells := make([]*vdom.VNode, 0, len(p.Columns)+1)
		if p.UsesRowSelection {
			box, err := component.Child(s, "select-"+keys[i], Checkbox, CheckboxProps{
				Class:               "mdc-data-table__row-checkbox",
				Checked:             selected[i],
				DisablesMdcInstance: true,
			})
			if err != nil {
				return nil, err
			}
			cells = append(cells, vdom.Td(vdom.Class("mdc-data-table__cell mdc-data-table__cell--checkbox"), box))
		}
		for j, c := range p.Columns {
			cells = append(cells, bodyCell(c, j, row))
		}

		classes := vdom.Classes("mdc-data-table__row").AddIf(selected[i], "mdc-data-table__row--selected")
		if p.RowClass != nil {
			classes.Add(p.RowClass(row))
		}
		rows[i] = vdom.Tr(
			vdom.Key(keys[i]),
			classes.Attr(),
			vdom.AttrIf(p.UsesRowSelection, vdom.Data("row-id", keys[i])),
			cells,
		)
	}

	var pagination *vdom.VNode
	if p.Pagination != nil {
		var err error
		if pagination, err = component.Child(s, "pagination", Pagination, *p.Pagination); err != nil {
			return nil, err
		}
	}

	var onScroll any
	if p.OnScroll != nil {
		onScroll = vdom.OnScroll(p.OnScroll)
	}
	return vdom.Div(
		vdom.Ref(root),
		vdom.Classes("mdc-data-table").AddIf(p.UsesStickyHeader, "mdc-data-table--sticky-header").Add(p.Class).Attr(),
		vdom.Div(vdom.Class("mdc-data-table__table-container"), onScroll,
			vdom.Table(
				vdom.Classes("mdc-data-table__table", p.TableClass).Attr(),
				vdom.AttrIf(p.AriaLabel != "", vdom.AriaLabel(p.AriaLabel)),
				head,
				vdom.Tbody(vdom.Class("mdc-data-table__content"), rows),
			),
		),
		pagination,
		p.Children,
	), nil
}

func headerCell[R any](c Column[R], index int) *vdom.VNode {
	classes := vdom.Classes("mdc-data-table__header-cell").
		AddIf(c.IsNumeric, "mdc-data-table__header-cell--numeric").
		Add(c.Class, c.HeaderClass)

	var sortAttrs []vdom.Attr
	var content any = c.Header
	if c.IsSortable {
		classes.Add("mdc-data-table__header-cell--with-sort")
		if c.SortStatus != Unsorted {
			classes.Add("mdc-data-table__header-cell--sorted").
				AddIf(c.SortStatus == SortDescending, "mdc-data-table__header-cell--sorted-descending")
		}
		status := string(c.SortStatus)
		if status == "" {
			status = "none"
		}
		id := c.Key
		if id == "" {
			id = strconv.Itoa(index)
		}
		sortAttrs = []vdom.Attr{vdom.AriaSort(status), vdom.Data("column-id", id)}

		label := vdom.Div(vdom.Class("mdc-data-table__header-cell-label"), c.Header)
		content = vdom.Div(vdom.Class("mdc-data-table__header-cell-wrapper"),
			vdom.If(!c.IsNumeric, label),
			vdom.Button(vdom.Class("mdc-icon-button material-icons mdc-data-table__sort-icon-button"), "arrow_upward"),
			vdom.If(c.IsNumeric, label),
			vdom.Div(vdom.Class("mdc-data-table__sort-status-label"), vdom.AriaHidden(true)),
		)
	}

	return vdom.Th(
		classes.Attr(),
		vdom.Role("columnheader"),
		vdom.Scope("col"),
		sortAttrs,
		c.HeaderAttrs,
		content,
	)
}

func bodyCell[R any](c Column[R], index int, row R) *vdom.VNode {
	var content any
	switch {
	case c.Render != nil:
		content = c.Render(row)
	case c.Text != nil:
		content = c.Text(row)
	}
	var attrs []vdom.Attr
	if c.BodyAttrs != nil {
		attrs = c.BodyAttrs(row)
	}
	classes := vdom.Classes("mdc-data-table__cell").
		AddIf(c.IsNumeric, "mdc-data-table__cell--numeric").
		Add(c.Class, c.BodyClass).
		Attr()

	key := vdom.Key(c.Key)
	if c.Key == "" {
		key = vdom.Key(strconv.Itoa(index))
	}
	if c.IsRowHeader {
		return vdom.Th(key, classes, vdom.Scope("row"), attrs, content)
	}
	return vdom.Td(key, classes, attrs, content)
}

// rowsDigest identifies the rendered rows and their selection.
func rowsDigest(keys []string, selected []bool) string {
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(k))
		if selected[i] {
			b.WriteByte('*')
		}
	}
	return b.String()
}

// when returns fn if cond holds and nil otherwise.
func when(cond bool, fn func(widget.Event)) func(widget.Event) {
	if !cond {
		return nil
	}
	return fn
}
