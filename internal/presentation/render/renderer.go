// Package render inserts the navigation shortcuts into a repository page.
// Both insertion points are keyed by a fixed element id, so rendering the
// same document again replaces the previous buttons instead of duplicating them.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"gotofork-core/internal/application/dto"
	"gotofork-core/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fixed ids of the two insertion points
const (
	ForkContainerID     = "go-to-fork-container"
	UpstreamContainerID = "back-to-upstream-container"
)

const (
	toggleClass = "go-to-fork-toggle"
	menuClass   = "go-to-fork-menu"

	forkColor     = "#238636"
	upstreamColor = "#0969da"

	containerStyle = "display: inline-block; align-items: center; position: relative; margin-left: 16px; margin-right: 8px; vertical-align: middle;"
	buttonStyle    = "display: inline-flex; align-items: center; gap: 4px; padding: 5px 12px; color: white; border: 1px solid rgba(27, 31, 36, 0.15); text-decoration: none; font-size: 12px; font-weight: 500; white-space: nowrap; line-height: 20px;"
	toggleStyle    = "display: inline-flex; align-items: center; padding: 5px 6px; color: white; border: 1px solid rgba(27, 31, 36, 0.15); border-left: 1px solid rgba(255, 255, 255, 0.2); border-radius: 0 6px 6px 0; line-height: 20px;"
	menuStyle      = "position: absolute; top: calc(100% + 4px); right: 0; background: #ffffff; border: 1px solid #d0d7de; border-radius: 6px; min-width: 200px; box-shadow: 0 8px 24px rgba(140, 149, 159, 0.2); z-index: 1000; overflow: hidden;"
	menuItemStyle  = "display: block; padding: 8px 12px; color: #24292f; text-decoration: none; font-size: 13px; font-weight: 500;"

	forkIconPath     = "M5 5.372v.878c0 .414.336.75.75.75h4.5a.75.75 0 0 0 .75-.75v-.878a2.25 2.25 0 1 1 1.5 0v.878a2.25 2.25 0 0 1-2.25 2.25h-1.5v2.128a2.251 2.251 0 1 1-1.5 0V8.5h-1.5A2.25 2.25 0 0 1 3.5 6.25v-.878a2.25 2.25 0 1 1 1.5 0ZM5 3.25a.75.75 0 1 0-1.5 0 .75.75 0 0 0 1.5 0Zm6.75.75a.75.75 0 1 0 0-1.5.75.75 0 0 0 0 1.5Zm-3 8.75a.75.75 0 1 0-1.5 0 .75.75 0 0 0 1.5 0Z"
	upstreamIconPath = "M8 0a8 8 0 1 1 0 16A8 8 0 0 1 8 0ZM1.5 8a6.5 6.5 0 1 0 13 0 6.5 6.5 0 0 0-13 0Zm9.78-2.22-5.5 5.5a.749.749 0 0 1-1.275-.326.749.749 0 0 1 .215-.734l5.5-5.5a.751.751 0 0 1 1.042.018.751.751 0 0 1 .018 1.042Z"
	caretIconPath    = "M4.427 7.427l3.396 3.396a.25.25 0 00.354 0l3.396-3.396A.25.25 0 0011.396 7H4.604a.25.25 0 00-.177.427z"
)

// headerSelectors are tried in order; the first present element receives the buttons
var headerSelectors = []struct {
	name  string
	match func(*html.Node) bool
}{
	{".AppHeader-context-full", byClass("AppHeader-context-full")},
	{".AppHeader", byClass("AppHeader")},
	{"header", byTag(atom.Header)},
}

// Renderer renders pipeline results into page documents
type Renderer struct {
	log *zap.Logger
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{log: logger.Named("render")}
}

// Clear removes previously rendered buttons
func (r *Renderer) Clear(doc *html.Node) {
	removeByID(doc, ForkContainerID)
	removeByID(doc, UpstreamContainerID)
}

// Render clears the document then renders the upstream and fork buttons of result
func (r *Renderer) Render(doc *html.Node, result *dto.AugmentResult) {
	r.Clear(doc)
	if result == nil {
		return
	}
	if result.Upstream != nil {
		r.RenderUpstream(doc, *result.Upstream)
	}
	if len(result.Forks) > 0 {
		r.RenderForks(doc, result.Forks)
	}
}

// RenderForks inserts the "Go to Fork" button. It reports false when there
// is nothing to render or no header to render into.
func (r *Renderer) RenderForks(doc *html.Node, forks []dto.ForkResponse) bool {
	if len(forks) == 0 {
		return false
	}
	header := r.header(doc)
	if header == nil {
		r.log.Info("could not find header")
		return false
	}

	removeByID(doc, ForkContainerID)
	header.AppendChild(forkContainer(forks))
	r.log.Debug("fork button added", logger.Count(len(forks)))
	return true
}

// RenderUpstream inserts the "Back to Upstream" button
func (r *Renderer) RenderUpstream(doc *html.Node, upstream dto.UpstreamResponse) bool {
	header := r.header(doc)
	if header == nil {
		r.log.Info("could not find header for upstream button")
		return false
	}

	removeByID(doc, UpstreamContainerID)
	header.AppendChild(upstreamContainer(upstream))
	r.log.Debug("upstream button added", zap.String("upstream", upstream.FullName))
	return true
}

// RenderHTML parses page, renders result into it and serializes it back
func (r *Renderer) RenderHTML(page string, result *dto.AugmentResult) (string, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	r.Render(doc, result)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) header(doc *html.Node) *html.Node {
	for _, sel := range headerSelectors {
		if n := findFirst(doc, sel.match); n != nil {
			return n
		}
	}
	return nil
}

func forkContainer(forks []dto.ForkResponse) *html.Node {
	container := element(atom.Div, "id", ForkContainerID, "style", containerStyle)

	if len(forks) == 1 {
		button := element(atom.A,
			"href", forks[0].URL,
			"class", "btn btn-sm",
			"title", forks[0].FullName,
			"style", buttonStyle+" border-radius: 6px; background-color: "+forkColor+";")
		appendChildren(button, icon(forkIconPath), text(" Go to Fork"))
		return appendChildren(container, button)
	}

	wrapper := element(atom.Div, "class", "go-to-fork-split", "style", "position: relative; display: inline-flex;")

	primary := element(atom.A,
		"href", forks[0].URL,
		"class", "btn btn-sm",
		"title", forks[0].FullName,
		"style", buttonStyle+" border-radius: 6px 0 0 6px; background-color: "+forkColor+";")
	appendChildren(primary, icon(forkIconPath), text(" Go to Fork"))

	toggle := element(atom.Button,
		"type", "button",
		"class", "btn btn-sm "+toggleClass,
		"aria-haspopup", "true",
		"aria-label", "Choose fork",
		"style", toggleStyle+" background-color: "+forkColor+";")
	appendChildren(toggle, icon(caretIconPath))

	menu := element(atom.Div, "class", menuClass, "role", "menu", "style", menuStyle)
	for i, f := range forks {
		style := menuItemStyle
		if i < len(forks)-1 {
			style += " border-bottom: 1px solid #d0d7de;"
		}
		item := element(atom.A, "href", f.URL, "role", "menuitem", "style", style)
		appendChildren(menu, appendChildren(item, text(f.Owner+"/"+f.Name)))
	}

	appendChildren(wrapper, primary, toggle, menu)
	var dropdown Dropdown
	dropdown.Apply(wrapper)

	return appendChildren(container, wrapper)
}

func upstreamContainer(upstream dto.UpstreamResponse) *html.Node {
	container := element(atom.Div, "id", UpstreamContainerID, "style", containerStyle)
	button := element(atom.A,
		"href", upstream.URL,
		"class", "btn btn-sm",
		"title", "Go to upstream: "+upstream.FullName,
		"style", buttonStyle+" border-radius: 6px; background-color: "+upstreamColor+";")
	appendChildren(button, icon(upstreamIconPath), text(" Back to Upstream"))
	return appendChildren(container, button)
}

func icon(path string) *html.Node {
	svg := svgElement("svg", "width", "12", "height", "12", "viewBox", "0 0 16 16", "fill", "currentColor", "aria-hidden", "true")
	return appendChildren(svg, svgElement("path", "d", path))
}
