// Package page orchestrates a single loaded document: parsing its HTML,
// cascading its stylesheet, running its scripts against the live DOM,
// building and painting a layout tree, and answering click hit-tests.
// This is the engine's external surface — everything else is wired
// together from here.
package page

import (
	"github.com/lukehoban/browser/css"
	"github.com/lukehoban/browser/dom"
	"github.com/lukehoban/browser/html"
	"github.com/lukehoban/browser/httpmsg"
	"github.com/lukehoban/browser/js"
	"github.com/lukehoban/browser/layout"
	"github.com/lukehoban/browser/log"
	"github.com/lukehoban/browser/paint"
)

// Page holds one loaded document's pipeline state: the DOM frame, its
// cascaded stylesheet, the resulting layout tree, and the flat paint
// output derived from it.
type Page struct {
	window      *dom.Window
	sheet       *css.StyleSheet
	layoutView  *layout.View
	displayItems []paint.DisplayItem
}

// New creates an empty Page with no loaded document.
func New() *Page {
	return &Page{}
}

// ReceiveResponse loads response's body as the page's document: it
// parses the HTML, extracts and cascades any <style> content, runs any
// <script> content against the resulting DOM, then builds the layout
// tree and paints it. Script execution happens before layout so that
// DOM mutations it makes (e.g. textContent assignment) are reflected
// in the painted output.
func (p *Page) ReceiveResponse(response *httpmsg.Response) {
	p.createFrame(response.Body)
	p.executeScripts()
	p.buildLayout()
	p.paintTree()
}

func (p *Page) createFrame(body string) {
	p.window = html.Parse(body)
	p.sheet = css.ParseStyleSheet(styleContent(p.window.Document))
}

func (p *Page) executeScripts() {
	if p.window == nil {
		return
	}
	source := scriptContent(p.window.Document)
	if source == "" {
		return
	}
	prog, err := js.ParseProgram(source)
	if err != nil {
		log.Warnf("page: discarding unparsable inline script: %v", err)
		return
	}
	js.NewRuntime(p.window).Execute(prog)
}

func (p *Page) buildLayout() {
	if p.window == nil {
		return
	}
	p.layoutView = layout.Build(p.window.Document, p.sheet)
}

func (p *Page) paintTree() {
	if p.layoutView == nil {
		return
	}
	p.displayItems = paint.Paint(p.layoutView.Root())
}

// DisplayItems returns the flat list of paint commands produced by the
// most recent ReceiveResponse.
func (p *Page) DisplayItems() []paint.DisplayItem {
	return p.displayItems
}

// Document returns the root of the loaded document, or nil before the
// first ReceiveResponse. Mainly useful for debug tooling.
func (p *Page) Document() *dom.Node {
	if p.window == nil {
		return nil
	}
	return p.window.Document
}

// Clicked hit-tests (x, y) against the layout tree, then walks up from
// the hit box through its ancestors to the nearest one backed by an
// element node. If that element is an <a>, its href is returned. Any
// other outcome — no box hit, or no enclosing <a> found before the
// layout root — yields "", false.
func (p *Page) Clicked(x, y int64) (string, bool) {
	if p.layoutView == nil {
		return "", false
	}
	n := paint.FindNodeByPosition(p.layoutView.Root(), x, y)
	for n != nil {
		if n.DOMNode.Kind == dom.ElementKind {
			break
		}
		n = n.Parent
	}
	if n == nil || !n.DOMNode.IsElement(dom.A) {
		return "", false
	}
	return n.DOMNode.GetAttribute("href"), true
}

// styleContent concatenates the text of every <style> element's raw-text
// child found anywhere in the document, in document order.
func styleContent(n *dom.Node) string {
	var out string
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		if n.IsElement(dom.Style) {
			for _, c := range n.Children {
				out += c.Text
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// scriptContent concatenates the text of every <script> element's
// raw-text child found anywhere in the document, in document order.
func scriptContent(n *dom.Node) string {
	var out string
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		if n.IsElement(dom.Script) {
			for _, c := range n.Children {
				out += c.Text
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
