package view

import (
	"math"
	"testing"

	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/view/header"

	"github.com/rivo/tview"
)

type stubView struct {
	id      model.ViewID
	blurred bool
}

func (v *stubView) GetPrimitive() tview.Primitive { return tview.NewBox() }
func (v *stubView) GetActionRegistry() *controller.ActionRegistry { return controller.NewActionRegistry() }
func (v *stubView) GetViewID() model.ViewID { return v.id }
func (v *stubView) OnFocus() {}
func (v *stubView) OnBlur() { v.blurred = true }

// countingFactory records every view it creates
type countingFactory struct {
	created []*stubView
}

func (f *countingFactory) CreateView(viewID model.ViewID, _ map[string]interface{}) controller.View {
	v := &stubView{id: viewID}
	f.created = append(f.created, v)
	return v
}

func newTestRootLayout(t *testing.T) (*RootLayout, *model.LayoutModel, *countingFactory) {
	t.Helper()
	hc := model.NewHeaderConfig()
	lm := model.NewLayoutModel()
	factory := &countingFactory{}
	hw := header.NewHeaderWidget(hc)
	rl := NewRootLayout(hw, hc, lm, factory, nil, nil)
	t.Cleanup(func() {
		rl.Cleanup()
		hw.Cleanup()
	})
	return rl, lm, factory
}

func TestRootLayout_SameParamsKeepsView(t *testing.T) {
	rl, lm, factory := newTestRootLayout(t)

	lm.SetContent(model.ListViewID, nil)
	lm.SetContent(model.HelpViewID, model.HelpParams(model.HelpSectionKeys))
	if len(factory.created) != 2 {
		t.Fatalf("created = %d, want 2", len(factory.created))
	}
	if !factory.created[0].blurred {
		t.Error("previous view should be blurred on swap")
	}

	// same view and params: instance kept
	lm.SetContent(model.HelpViewID, model.HelpParams(model.HelpSectionKeys))
	lm.Touch()
	if len(factory.created) != 2 {
		t.Errorf("created = %d after re-navigation, want 2", len(factory.created))
	}
	if rl.GetContentView() != factory.created[1] {
		t.Error("content view replaced")
	}

	// same view, other params: recreated
	lm.SetContent(model.HelpViewID, nil)
	if len(factory.created) != 3 {
		t.Errorf("created = %d after section change, want 3", len(factory.created))
	}
}

func TestRootLayout_HeaderFollowsPreference(t *testing.T) {
	rl, lm, _ := newTestRootLayout(t)
	lm.SetContent(model.ListViewID, nil)

	rl.headerConfig.SetUserPreference(false)
	lm.Touch()
	if rl.headerConfig.IsVisible() {
		t.Error("header visible although the preference is off")
	}
}

func TestStableParamsKey(t *testing.T) {
	empty, ok := stableParamsKey(nil)
	if !ok || empty != "" {
		t.Errorf("nil params = (%q, %v), want empty ok", empty, ok)
	}

	a, _ := stableParamsKey(map[string]any{"section": "keys", "n": 1})
	b, _ := stableParamsKey(map[string]any{"n": 1, "section": "keys"})
	if a != b {
		t.Errorf("key depends on map order: %q vs %q", a, b)
	}
	c, _ := stableParamsKey(map[string]any{"section": "help", "n": 1})
	if a == c {
		t.Error("different params produced the same key")
	}

	// non-scalar values are tagged with their type
	s, ok := stableParamsKey(map[string]any{"ids": []string{"x"}})
	if !ok || s == "" {
		t.Errorf("slice param = (%q, %v)", s, ok)
	}
	if _, ok := stableParamsKey(map[string]any{"f": math.NaN()}); ok {
		t.Error("NaN cannot be encoded and should disable reuse")
	}
}
