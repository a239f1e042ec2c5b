package gallery

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/mdc"
	"github.com/vango-dev/mdc/pkg/mdctest"
	"github.com/vango-dev/mdc/pkg/widget"
)

func mountGallery(t *testing.T) (*mdctest.Toolkit, *Gallery, func()) {
	t.Helper()
	tk := mdctest.NewToolkit(mdctest.WithMeasure(mdctest.FixedLayout))
	g := New()
	root := mdctest.Mount(t, tk, Page, g)
	update := func() {
		t.Helper()
		if err := root.Update(g); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
	return tk, g, update
}

func TestPageBindsEveryKind(t *testing.T) {
	tk, _, _ := mountGallery(t)
	for _, kind := range widget.Kinds {
		if tk.Created(kind) == 0 {
			t.Errorf("no %s constructed", kind)
		}
	}
}

func TestFormControls(t *testing.T) {
	tk, g, update := mountGallery(t)

	tk.FindAll(widget.KindSelect)[0].SelectItem("cherry", 2)
	tk.Find(widget.KindTabBar).Activate(2)
	tk.Find(widget.KindIconButtonToggle).Toggle()
	update()

	if g.Fruit != "cherry" {
		t.Errorf("Fruit = %q, want cherry", g.Fruit)
	}
	if g.ActiveTab != 2 {
		t.Errorf("ActiveTab = %d, want 2", g.ActiveTab)
	}
	if !g.Favorite {
		t.Error("Favorite = false after toggle")
	}
	if got := tk.Find(widget.KindTabBar).Field("activeTab"); got != 2 {
		t.Errorf("activeTab = %v, want 2", got)
	}
}

func TestDataTableSortAndPaging(t *testing.T) {
	tk, g, update := mountGallery(t)

	tk.Find(widget.KindDataTable).Sort("radius", 1, true)
	update()
	var names []string
	for _, p := range g.Rows() {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"Jupiter", "Saturn", "Uranus"}, names); diff != "" {
		t.Errorf("first page (-want +got):\n%s", diff)
	}

	g.lastPage()
	update()
	if g.Page != 2 || len(g.Rows()) != 2 {
		t.Errorf("last page = %d with %d rows", g.Page, len(g.Rows()))
	}
	if got := g.rangeLabel(); got != "7-8 of 8" {
		t.Errorf("rangeLabel() = %q", got)
	}

	tk.FindAll(widget.KindSelect)[1].SelectItem("5", 1)
	update()
	if g.PageSize != 5 || g.Page != 0 {
		t.Errorf("PageSize = %d, Page = %d after rows count change", g.PageSize, g.Page)
	}
	if g.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", g.PageCount())
	}
}

func TestDeleteSelection(t *testing.T) {
	tk, g, update := mountGallery(t)

	g.confirmDelete()
	update()
	if g.AlertOpen {
		t.Fatal("alert opened without a selection")
	}

	tk.Find(widget.KindDataTable).ClickRowCheckbox("Earth")
	update()
	if diff := cmp.Diff([]string{"Earth"}, g.SelectedNames()); diff != "" {
		t.Errorf("selection (-want +got):\n%s", diff)
	}

	g.confirmDelete()
	update()
	alert := tk.FindAll(widget.KindDialog)[1]
	if !alert.Opened() {
		t.Fatal("alert dialog not opened")
	}
	if err := alert.Click("delete"); err != nil {
		t.Fatal(err)
	}
	update()
	if g.AlertOpen || len(g.SelectedNames()) != 0 {
		t.Errorf("after delete: open = %v, selected = %v", g.AlertOpen, g.SelectedNames())
	}
}

func TestDialogDiscardsName(t *testing.T) {
	tk, g, update := mountGallery(t)
	g.Name = "Ada"
	update()

	g.openDialog()
	update()
	dialog := tk.FindAll(widget.KindDialog)[0]
	if !dialog.Opened() {
		t.Fatal("dialog not opened")
	}
	if err := dialog.Click("discard"); err != nil {
		t.Fatal(err)
	}
	update()

	if g.DialogOpen || g.LastAction != "discard" || g.Name != "" {
		t.Errorf("state = open %v, action %q, name %q", g.DialogOpen, g.LastAction, g.Name)
	}
	if got := dialog.Calls("Open"); got != 1 {
		t.Errorf("Open calls = %d, want 1", got)
	}
}

func TestSnackbar(t *testing.T) {
	tk, g, update := mountGallery(t)

	g.save()
	update()
	snackbar := tk.Find(widget.KindSnackbar)
	if err := snackbar.ClickAction(); err != nil {
		t.Fatal(err)
	}
	update()
	if g.SnackbarOpen || g.Saves != 0 {
		t.Errorf("after undo: open = %v, saves = %d", g.SnackbarOpen, g.Saves)
	}

	g.save()
	update()
	tk.Advance(4 * time.Second)
	update()
	if g.SnackbarOpen || g.Saves != 1 {
		t.Errorf("after timeout: open = %v, saves = %d", g.SnackbarOpen, g.Saves)
	}
}

func TestSortedHeaders(t *testing.T) {
	g := New()
	g.SortColumn, g.Sort = "name", mdc.SortDescending
	props := planetTable(g)
	if props.Columns[0].SortStatus != mdc.SortDescending || props.Columns[1].SortStatus != mdc.Unsorted {
		t.Errorf("sort status = %q, %q", props.Columns[0].SortStatus, props.Columns[1].SortStatus)
	}
	if props.Rows[0].Name != "Venus" {
		t.Errorf("first row = %s, want Venus", props.Rows[0].Name)
	}
}

func TestSamples(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Samples() {
		if seen[s.Name] {
			t.Errorf("duplicate sample %q", s.Name)
		}
		seen[s.Name] = true

		tree, err := s.Render(context.Background())
		if err != nil {
			t.Errorf("%s: Render() error = %v", s.Name, err)
			continue
		}
		if html := mdctest.RenderToString(tree); !strings.Contains(html, "data-mdc-ref") {
			t.Errorf("%s: markup has no widget root: %s", s.Name, html)
		}
	}
	if len(seen) != 15 {
		t.Errorf("%d samples, want 15", len(seen))
	}

	if _, err := Lookup("dialog"); err != nil {
		t.Errorf("Lookup(dialog) error = %v", err)
	}
	if _, err := Lookup("slider"); !errors.HasCode(err, "E140") {
		t.Errorf("Lookup(slider) error = %v, want E140", err)
	}
}
