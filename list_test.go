package vlist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-virtual/vlist"
)

type testRow struct {
	ID   string
	Name string
}

func testRows(n int) []testRow {
	rows := make([]testRow, n)
	for i := range rows {
		rows[i] = testRow{
			ID:   fmt.Sprintf("row-%04d", i),
			Name: fmt.Sprintf("item %d", i),
		}
	}
	return rows
}

func setupList(t *testing.T, n int, opts ...vlist.Option) *vlist.List[testRow] {
	t.Helper()
	list, err := vlist.NewList(32, func(r testRow) string { return r.ID }, opts...)
	if err != nil {
		t.Fatalf("NewList returned error: %v", err)
	}
	list.Replace(testRows(n))
	list.Viewport().SetHeight(300)
	return list
}

func TestNewListNilKeyFunc(t *testing.T) {
	_, err := vlist.NewList[testRow](32, nil)
	if !errors.Is(err, vlist.ErrInvalidConfig) {
		t.Errorf("nil key func: error %v is not ErrInvalidConfig", err)
	}
}

func TestNewListBadGeometry(t *testing.T) {
	_, err := vlist.NewList(0, func(r testRow) string { return r.ID })
	if !errors.Is(err, vlist.ErrInvalidConfig) {
		t.Errorf("zero item height: error %v is not ErrInvalidConfig", err)
	}
}

func TestListPlanKeysAndPlacement(t *testing.T) {
	list := setupList(t, 500, vlist.Buffer(20))
	list.Viewport().SetScroll(3200)

	plan := list.Plan()
	if plan.Window.Start != 80 || plan.Window.End != 130 {
		t.Fatalf("window = [%d, %d), want [80, 130)", plan.Window.Start, plan.Window.End)
	}
	if len(plan.Items) != 50 {
		t.Fatalf("len(Items) = %d, want 50", len(plan.Items))
	}

	for i, it := range plan.Items {
		wantIdx := 80 + i
		if it.Index != wantIdx {
			t.Fatalf("item %d: index %d, want %d", i, it.Index, wantIdx)
		}
		if want := fmt.Sprintf("row-%04d", wantIdx); it.Key != want {
			t.Fatalf("item %d: key %q, want %q", i, it.Key, want)
		}
		if want := float32(wantIdx) * 32; it.Y != want {
			t.Fatalf("item %d: y %v, want %v", i, it.Y, want)
		}
	}
}

func TestListPlanEmpty(t *testing.T) {
	list := setupList(t, 0)
	plan := list.Plan()
	if len(plan.Items) != 0 {
		t.Errorf("empty list plan has %d items", len(plan.Items))
	}
	if plan.Window != (vlist.Window{}) {
		t.Errorf("empty list window = %+v", plan.Window)
	}
}

func TestListReplaceBumpsGeneration(t *testing.T) {
	list := setupList(t, 100)
	gen := list.Plan().Generation

	list.Replace(testRows(100))
	if got := list.Plan().Generation; got <= gen {
		t.Errorf("generation after Replace = %d, want > %d", got, gen)
	}
}

func TestListReplaceShrinkClampsScroll(t *testing.T) {
	list := setupList(t, 500)
	list.Viewport().SetScroll(15000)

	list.Replace(testRows(20))
	maxScroll := float32(20*32) - 300
	if got := list.Viewport().Scroll(); got != maxScroll {
		t.Errorf("scroll after shrink = %v, want %v", got, maxScroll)
	}

	plan := list.Plan()
	if plan.Window.End > 20 {
		t.Errorf("window end %d exceeds new count 20", plan.Window.End)
	}
}

// A filtered snapshot keeps item identity: the same ID maps to the
// same key at its new index.
func TestListReplaceKeepsKeysStable(t *testing.T) {
	list := setupList(t, 100)

	// Keep only even rows
	rows := testRows(100)
	filtered := rows[:0]
	for i, r := range rows {
		if i%2 == 0 {
			filtered = append(filtered, r)
		}
	}
	list.Replace(filtered)

	if list.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", list.Len())
	}
	if got := list.Key(1); got != "row-0002" {
		t.Errorf("Key(1) = %q, want %q", got, "row-0002")
	}
	if got := list.Item(1).ID; got != "row-0002" {
		t.Errorf("Item(1).ID = %q, want %q", got, "row-0002")
	}
}

func TestListEnsureVisible(t *testing.T) {
	list := setupList(t, 500)

	list.EnsureVisible(50)
	wantScroll := float32(51*32) - 300
	if got := list.Viewport().Scroll(); got != wantScroll {
		t.Errorf("scroll after EnsureVisible(50) = %v, want %v", got, wantScroll)
	}

	// Already visible: no movement
	before := list.Viewport().Scroll()
	list.EnsureVisible(50)
	if got := list.Viewport().Scroll(); got != before {
		t.Errorf("EnsureVisible of a visible item moved scroll %v -> %v", before, got)
	}

	// Scrolling up to an earlier item aligns its top edge
	list.EnsureVisible(10)
	if got := list.Viewport().Scroll(); got != 320 {
		t.Errorf("scroll after EnsureVisible(10) = %v, want 320", got)
	}
}

func TestBuildPlanWindowSubset(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}
	w := vlist.Window{Start: 1, End: 4, OffsetTop: 10, TotalHeight: 50}

	plan := vlist.BuildPlan(w, 10, keys, 7)
	if plan.Generation != 7 {
		t.Errorf("generation = %d, want 7", plan.Generation)
	}
	want := []vlist.PlanItem{
		{Key: "b", Index: 1, Y: 10},
		{Key: "c", Index: 2, Y: 20},
		{Key: "d", Index: 3, Y: 30},
	}
	if len(plan.Items) != len(want) {
		t.Fatalf("len(Items) = %d, want %d", len(plan.Items), len(want))
	}
	for i := range want {
		if plan.Items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, plan.Items[i], want[i])
		}
	}
}
