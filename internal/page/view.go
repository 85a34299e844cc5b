package page

import (
	"fmt"
	"html"

	"github.com/wassat/website/internal/chat"
	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/markup"
	"github.com/wassat/website/internal/scroll"
	"github.com/wassat/website/internal/site"
)

// Classes written by the controllers.
const (
	classLoading     = "loading"
	classLoaded      = "loaded"
	classScrolled    = "scrolled"
	classActive      = "active"
	classHidden      = "hidden"
	classOffCanvas   = "translate-x-full"
	classScrollLock  = "overflow-hidden"
	classPendingTurn = "pending"
)

// view paints controller state onto the page document.
type view struct {
	p *Page
}

func (v *view) doc() *markup.Document { return v.p.doc }

// ApplyAll binds dict and queues the resolved values for the browser.
func (v *view) ApplyAll(dict *i18n.Dictionary) int {
	n := v.doc().ApplyAll(dict)

	translations := make(map[string]string)
	for _, key := range v.doc().Keys() {
		if s, ok := dict.Resolve(key); ok && s != "" {
			translations[key] = s
		}
	}
	v.p.setPending(func(p *Patch) { p.Translations = translations })
	return n
}

func (v *view) SetLabels(lang i18n.Language) {
	other := lang.Other()
	v.doc().SetText(site.IDLangToggleLabel, other.ShortLabel())
	v.doc().SetText(site.IDMobileLangLabel, other.Name())
	v.doc().SetLang(string(lang))
	v.p.setPending(func(p *Patch) { p.Lang = string(lang) })
}

func (v *view) MarkLoaded() {
	v.doc().RemoveClass(site.IDBody, classLoading)
	v.doc().AddClass(site.IDBody, classLoaded)
}

func (v *view) SetScrolled(scrolled bool) {
	toggleClass(v.doc(), site.IDNav, classScrolled, scrolled)
}

func (v *view) Reveal(id string) {
	v.doc().AddClass(id, classActive)
}

func (v *view) SetParallax(id string, offset float64) {
	v.doc().SetAttr(id, "style", "transform: "+scroll.Transform(offset))
}

func (v *view) SetMenuOpen(open bool) {
	toggleClass(v.doc(), site.IDMobileMenu, classOffCanvas, !open)
}

func (v *view) SetModalOpen(open bool) {
	toggleClass(v.doc(), site.IDModal, classHidden, !open)
}

func (v *view) SetScrollLock(locked bool) {
	toggleClass(v.doc(), site.IDBody, classScrollLock, locked)
}

func (v *view) ShowZoom(src string) {
	v.doc().SetAttr(site.IDZoomImage, "src", src)
	v.doc().RemoveClass(site.IDZoomModal, classHidden)
}

func (v *view) SetZoomActive(active bool) {
	toggleClass(v.doc(), site.IDZoomModal, classActive, active)
}

func (v *view) HideZoom() {
	v.doc().AddClass(site.IDZoomModal, classHidden)
	v.doc().SetAttr(site.IDZoomImage, "src", "")
}

func (v *view) AppendTurn(turn chat.Turn) {
	if err := v.doc().AppendHTML(site.IDChatMessages, turnHTML(turn)); err != nil {
		v.p.logger.Warn("appending chat turn", "turn", turn.ID, "error", err)
	}
	v.p.publish()
}

func (v *view) UpdateTurn(turn chat.Turn) {
	id := turnID(turn.ID)
	if err := v.doc().ReplaceHTML(id, turnBody(turn)); err != nil {
		v.p.logger.Warn("updating chat turn", "turn", turn.ID, "error", err)
	}
	toggleClass(v.doc(), id, classPendingTurn, turn.Pending)
	v.p.publish()
}

func (v *view) ScrollToLatest() {
	v.p.setPending(func(p *Patch) { p.ScrollChat = true })
}

func (v *view) ClearInput() {
	v.doc().SetAttr(site.IDChatInput, "value", "")
}

func (v *view) SetChatPanel(open bool) {
	toggleClass(v.doc(), site.IDChatPanel, classHidden, !open)
}

func toggleClass(doc *markup.Document, id, class string, on bool) {
	if on {
		doc.AddClass(id, class)
	} else {
		doc.RemoveClass(id, class)
	}
}

func turnID(id int) string {
	return fmt.Sprintf("turn-%d", id)
}

func turnHTML(turn chat.Turn) string {
	class := "chat-turn chat-" + string(turn.Role)
	if turn.Pending {
		class += " " + classPendingTurn
	}
	return fmt.Sprintf(`<div id="%s" class="%s">%s</div>`, turnID(turn.ID), class, turnBody(turn))
}

// turnBody renders assistant text as Markdown and user text verbatim.
func turnBody(turn chat.Turn) string {
	if turn.Role == chat.RoleAssistant && !turn.Pending {
		return chat.RenderMarkdown(turn.Text)
	}
	return html.EscapeString(turn.Text)
}
