package view

import (
	_ "embed"

	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/model"

	nav "github.com/boolean-maybe/navidown/navidown"
	navtview "github.com/boolean-maybe/navidown/navidown/tview"
	navutil "github.com/boolean-maybe/navidown/util"
	"github.com/rivo/tview"
)

//go:embed help/help.md
var helpMd string

//go:embed help/keys.md
var keysMd string

const helpStartPage = "help"

// HelpView renders the embedded help pages as navigable markdown
type HelpView struct {
	root        *tview.Flex
	titleBar    tview.Primitive
	contentView *navtview.Viewer
	provider    *helpPageProvider
	registry    *controller.ActionRegistry
	onActions   func()
	startPage   string
}

// NewHelpView creates the help view opened at section; unknown or empty sections open the start page
func NewHelpView(section string) *HelpView {
	hv := &HelpView{
		provider: &helpPageProvider{pages: map[string]string{
			helpStartPage: helpMd,
			"keys":        keysMd,
		}},
		registry:  controller.HelpViewActions(false, false),
		startPage: helpStartPage,
	}
	if _, ok := hv.provider.pages[section]; ok {
		hv.startPage = section
	}
	hv.build()
	return hv
}

func (hv *HelpView) build() {
	colors := config.GetColors()
	hv.titleBar = NewGradientCaptionRow("HELP", colors.CaptionGradient, colors.CaptionText)

	hv.contentView = navtview.New()
	hv.contentView.SetAnsiConverter(navutil.NewAnsiConverter(true))
	hv.contentView.SetRenderer(nav.NewANSIRendererWithStyle(config.GetEffectiveTheme()))
	hv.contentView.SetBackgroundColor(config.GetContentBackgroundColor())

	hv.contentView.SetStateChangedHandler(func(_ *navtview.Viewer) {
		hv.updateNavigationActions()
	})

	hv.contentView.SetSelectHandler(func(v *navtview.Viewer, elem nav.NavElement) {
		if elem.Type != nav.NavElementURL {
			return
		}
		content, err := hv.provider.FetchContent(elem)
		if err != nil || content == "" {
			return
		}
		v.SetMarkdownWithSource(content, hv.provider.pageKey(elem), true)
	})

	start, _ := hv.provider.FetchContent(nav.NavElement{Text: hv.startPage})
	hv.contentView.SetMarkdownWithSource(start, hv.startPage, false)

	hv.root = tview.NewFlex().SetDirection(tview.FlexRow)
	hv.root.AddItem(hv.titleBar, config.CaptionHeight, 0, false)
	hv.root.AddItem(hv.contentView, 0, 1, true)
}

// updateNavigationActions rebuilds header hints from the viewer's history state
func (hv *HelpView) updateNavigationActions() {
	core := hv.contentView.Core()
	hv.registry = controller.HelpViewActions(core.CanGoBack(), core.CanGoForward())
	if hv.onActions != nil {
		hv.onActions()
	}
}

// SetActionsChangeHandler registers a callback for when header hints change
func (hv *HelpView) SetActionsChangeHandler(handler func()) {
	hv.onActions = handler
}

// StartPage returns the page the view opened on
func (hv *HelpView) StartPage() string {
	return hv.startPage
}

func (hv *HelpView) GetPrimitive() tview.Primitive {
	return hv.root
}

func (hv *HelpView) GetActionRegistry() *controller.ActionRegistry {
	return hv.registry
}

func (hv *HelpView) GetViewID() model.ViewID {
	return model.HelpViewID
}

// InitialFocus focuses the markdown viewer so it receives link navigation keys
func (hv *HelpView) InitialFocus() tview.Primitive {
	return hv.contentView
}

func (hv *HelpView) OnFocus() {}

func (hv *HelpView) OnBlur() {}

// helpPageProvider serves embedded help pages. Links address pages by URL;
// the initial load addresses them by text.
type helpPageProvider struct {
	pages map[string]string
}

func (p *helpPageProvider) pageKey(elem nav.NavElement) string {
	if elem.URL != "" {
		return elem.URL
	}
	return elem.Text
}

func (p *helpPageProvider) FetchContent(elem nav.NavElement) (string, error) {
	if p == nil {
		return "", nil
	}
	return p.pages[p.pageKey(elem)], nil
}
