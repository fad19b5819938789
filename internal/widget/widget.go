// Package widget abstracts the page elements the UI behaviors read from and
// write to, so validation, coloring and tree rendering run without a browser.
package widget

// Element is a page element holding text or markup.
type Element interface {
	Text() string
	SetText(text string)
}

// Watchable is an Element that notifies listeners when the user edits it.
type Watchable interface {
	Element
	OnChange(fn func())
}

// Panel is an Element that can be shown or hidden.
type Panel interface {
	Element
	Show()
	Hide()
	Visible() bool
}

// Field is an in-memory Element. It implements Watchable and Panel and is
// used by the HTTP transport to carry request content through the behaviors.
// A Field is not safe for concurrent use.
type Field struct {
	text      string
	visible   bool
	listeners []func()
}

// NewField returns a visible field holding text.
func NewField(text string) *Field {
	return &Field{text: text, visible: true}
}

func (f *Field) Text() string {
	return f.text
}

// SetText replaces the content without notifying listeners, matching a
// programmatic update of the page.
func (f *Field) SetText(text string) {
	f.text = text
}

// Input replaces the content as a user edit would and notifies listeners in
// registration order.
func (f *Field) Input(text string) {
	f.text = text
	for _, fn := range f.listeners {
		fn()
	}
}

func (f *Field) OnChange(fn func()) {
	if fn != nil {
		f.listeners = append(f.listeners, fn)
	}
}

func (f *Field) Show() {
	f.visible = true
}

func (f *Field) Hide() {
	f.visible = false
}

func (f *Field) Visible() bool {
	return f.visible
}
