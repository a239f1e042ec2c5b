package mdc

import (
	"strconv"

	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// DefaultRowsCounts are the rows-per-page choices of a Pagination.
var DefaultRowsCounts = []int{10, 25, 50, 100}

// PaginationProps configures Pagination.
type PaginationProps struct {
	// RowsPerPageLabel labels the rows-per-page select.
	RowsPerPageLabel string

	// RowsCounts defaults to DefaultRowsCounts. RowsCount is the selected
	// count and defaults to the first choice.
	RowsCounts []int
	RowsCount  int

	// Label shows the current range, e.g. "1-10 of 100".
	Label string

	IsFirstPage bool
	IsLastPage  bool

	Class string

	// OnChangeRowsCount receives the select's {value, index}.
	OnChangeRowsCount func(widget.Event)

	OnFirstPage func()
	OnPrevPage  func()
	OnNextPage  func()
	OnLastPage  func()
}

// Pagination renders the pagination footer of a DataTable.
func Pagination(s *component.Scope, p PaginationProps) (*vdom.VNode, error) {
	counts := p.RowsCounts
	if len(counts) == 0 {
		counts = DefaultRowsCounts
	}
	values := make([]string, len(counts))
	for i, n := range counts {
		values[i] = strconv.Itoa(n)
	}
	current := values[0]
	if p.RowsCount > 0 {
		current = strconv.Itoa(p.RowsCount)
	}

	rowsPerPage, err := component.Child(s, "rows-per-page", Select, SelectProps{
		Class:     "mdc-data-table__pagination-rows-per-page-select",
		Variation: SelectOutlined,
		Items:     StringItems(values...),
		Value:     &current,
		OnChange:  p.OnChangeRowsCount,
	})
	if err != nil {
		return nil, err
	}

	return vdom.Div(
		vdom.Classes("mdc-data-table__pagination", p.Class).Attr(),
		vdom.Div(vdom.Class("mdc-data-table__pagination-trailing"),
			vdom.Div(vdom.Class("mdc-data-table__pagination-rows-per-page"),
				vdom.If(p.RowsPerPageLabel != "",
					vdom.Div(vdom.Class("mdc-data-table__pagination-rows-per-page-label"), p.RowsPerPageLabel)),
				rowsPerPage,
			),
			vdom.Div(vdom.Class("mdc-data-table__pagination-navigation"),
				vdom.If(p.Label != "", vdom.Div(vdom.Class("mdc-data-table__pagination-total"), p.Label)),
				pageButton("first_page", p.IsFirstPage, p.OnFirstPage),
				pageButton("chevron_left", p.IsFirstPage, p.OnPrevPage),
				pageButton("chevron_right", p.IsLastPage, p.OnNextPage),
				pageButton("last_page", p.IsLastPage, p.OnLastPage),
			),
		),
	), nil
}

func pageButton(icon string, disabled bool, onClick func()) *vdom.VNode {
	var click any
	if onClick != nil {
		click = vdom.OnClick(onClick)
	}
	return vdom.Button(
		vdom.Class("mdc-icon-button material-icons mdc-data-table__pagination-button"),
		vdom.DisabledIf(disabled),
		click,
		vdom.Div(vdom.Class("mdc-button__icon"), icon),
	)
}
