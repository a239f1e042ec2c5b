package gallery

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/vango-dev/mdc/pkg/mdc"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// Planet is a row of the gallery data table.
type Planet struct {
	Name   string
	Radius int
	Moons  int
}

// Planets is the data table content.
var Planets = []Planet{
	{"Mercury", 2440, 0},
	{"Venus", 6052, 0},
	{"Earth", 6371, 1},
	{"Mars", 3390, 2},
	{"Jupiter", 69911, 95},
	{"Saturn", 58232, 146},
	{"Uranus", 25362, 28},
	{"Neptune", 24622, 16},
}

// Tabs are the labels of the gallery tab bar.
var Tabs = []string{"Components", "Data", "About"}

// Gallery is the state of one gallery page. Its handlers mutate it in
// place; the owner re-renders after every event.
type Gallery struct {
	Name       string
	Subscribed bool
	Size       string
	Fruit      string
	ActiveTab  int
	Favorite   bool
	Clicks     int

	DialogOpen bool
	LastAction string
	AlertOpen  bool

	SnackbarOpen bool
	Saves        int

	SortColumn string
	Sort       mdc.SortStatus
	Selected   map[string]bool
	PageSize   int
	Page       int
}

// New returns the initial gallery state.
func New() *Gallery {
	return &Gallery{
		Size:     "medium",
		Fruit:    "apple",
		PageSize: 3,
		Selected: make(map[string]bool),
	}
}

// sorted returns Planets in the current sort order.
func (g *Gallery) sorted() []Planet {
	rows := slices.Clone(Planets)
	if g.Sort == mdc.Unsorted {
		return rows
	}
	slices.SortStableFunc(rows, func(a, b Planet) int {
		var c int
		switch g.SortColumn {
		case "radius":
			c = cmp.Compare(a.Radius, b.Radius)
		case "moons":
			c = cmp.Compare(a.Moons, b.Moons)
		default:
			c = cmp.Compare(a.Name, b.Name)
		}
		if g.Sort == mdc.SortDescending {
			c = -c
		}
		return c
	})
	return rows
}

// Rows returns the rows of the current page.
func (g *Gallery) Rows() []Planet {
	rows := g.sorted()
	start := min(g.Page*g.PageSize, len(rows))
	end := min(start+g.PageSize, len(rows))
	return rows[start:end]
}

// PageCount returns the number of pages.
func (g *Gallery) PageCount() int {
	return max(1, (len(Planets)+g.PageSize-1)/g.PageSize)
}

// SelectedNames returns the selected planets in table order.
func (g *Gallery) SelectedNames() []string {
	var out []string
	for _, p := range Planets {
		if g.Selected[p.Name] {
			out = append(out, p.Name)
		}
	}
	return out
}

func (g *Gallery) rangeLabel() string {
	start := g.Page * g.PageSize
	end := min(start+g.PageSize, len(Planets))
	return strconv.Itoa(start+1) + "-" + strconv.Itoa(end) + " of " + strconv.Itoa(len(Planets))
}

func (g *Gallery) click() { g.Clicks++ }

func (g *Gallery) openDialog() { g.DialogOpen = true }

func (g *Gallery) dialogClosing(e widget.Event) {
	g.DialogOpen = false
	g.LastAction = e.Action()
	if g.LastAction == "discard" {
		g.Name = ""
	}
}

func (g *Gallery) save() {
	g.Saves++
	g.SnackbarOpen = true
}

func (g *Gallery) snackbarClosing(e widget.Event) {
	g.SnackbarOpen = false
	if e.Reason() == "action" && g.Saves > 0 {
		g.Saves--
	}
}

func (g *Gallery) confirmDelete() {
	if len(g.SelectedNames()) > 0 {
		g.AlertOpen = true
	}
}

func (g *Gallery) alertClosing(e widget.Event) {
	g.AlertOpen = false
	if e.Action() == "delete" {
		clear(g.Selected)
	}
}

func (g *Gallery) nameInput(e vdom.Event) { g.Name = e.Value }

func (g *Gallery) toggleSubscribed() { g.Subscribed = !g.Subscribed }

func (g *Gallery) fruitChanged(e widget.Event) { g.Fruit = e.String("value") }

func (g *Gallery) tabActivated(e widget.Event) { g.ActiveTab = e.Int("index") }

func (g *Gallery) favoriteChanged(e widget.Event) { g.Favorite = e.Bool("isOn") }

func (g *Gallery) sortChanged(e widget.Event) {
	g.SortColumn = e.String("columnId")
	g.Sort = mdc.SortStatus(e.String("sortValue"))
	g.Page = 0
}

func (g *Gallery) rowSelectionChanged(e widget.Event) {
	g.Selected[e.String("rowId")] = e.Bool("selected")
}

func (g *Gallery) selectPage(on bool) {
	for _, p := range g.Rows() {
		g.Selected[p.Name] = on
	}
}

func (g *Gallery) rowsCountChanged(e widget.Event) {
	if n, err := strconv.Atoi(e.String("value")); err == nil && n > 0 {
		g.PageSize = n
		g.Page = 0
	}
}

func (g *Gallery) firstPage() { g.Page = 0 }

func (g *Gallery) prevPage() { g.Page = max(0, g.Page-1) }

func (g *Gallery) nextPage() { g.Page = min(g.PageCount()-1, g.Page+1) }

func (g *Gallery) lastPage() { g.Page = g.PageCount() - 1 }
