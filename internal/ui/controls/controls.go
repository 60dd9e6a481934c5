// Package controls draws the control strip at the top of the window and
// turns clicks and typing into input events.
package controls

import (
	"image/color"
	"log"

	"chosenoffset.com/thickline/internal/input"
	"chosenoffset.com/thickline/internal/render"
)

// Height of the control strip in pixels. Clicks that miss every widget hit
// the canvas, including clicks on the strip background.
const Height = 36

const maxFieldLen = 32

// Field identifies a text field.
type Field int

const (
	FieldNone Field = iota
	FieldWidth
	FieldCoordinates
)

// Result is what one Update produced.
type Result struct {
	// Event is the append request, or nil
	Event input.Event
	// Export is set when the user asked for a PDF export
	Export bool
}

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

type buttonID int

const (
	buttonRandom buttonID = iota
	buttonAdd
	buttonExport
)

type button struct {
	id    buttonID
	label string
	area  rect
}

var (
	panelColor   = color.RGBA{235, 235, 240, 255}
	borderColor  = color.RGBA{120, 120, 130, 255}
	focusColor   = color.RGBA{40, 110, 220, 255}
	textColor    = color.RGBA{20, 20, 30, 255}
	labelColor   = color.RGBA{90, 90, 100, 255}
	overlayColor = color.RGBA{0, 0, 0, 120}
	noticeColor  = color.RGBA{255, 250, 235, 255}
)

// Panel is the control strip: a width field, a coordinates field and the
// Random, Add and Export buttons, plus a blocking notice.
type Panel struct {
	renderer render.Renderer
	input    render.InputManager

	widthText string
	coordText string
	focus     Field
	notice    string

	widthArea rect
	coordArea rect
	buttons   []button
}

// NewPanel creates the control panel with the width field pre-filled.
func NewPanel(r render.Renderer, in render.InputManager, initialWidth string) *Panel {
	p := &Panel{
		renderer:  r,
		input:     in,
		widthText: initialWidth,
	}
	p.layout()
	return p
}

func (p *Panel) layout() {
	p.widthArea = rect{x: 60, y: 6, w: 60, h: 24}
	p.coordArea = rect{x: 200, y: 6, w: 120, h: 24}
	p.buttons = []button{
		{id: buttonAdd, label: "Add", area: rect{x: 328, y: 6, w: 50, h: 24}},
		{id: buttonRandom, label: "Random", area: rect{x: 392, y: 6, w: 70, h: 24}},
		{id: buttonExport, label: "Export PDF", area: rect{x: 476, y: 6, w: 90, h: 24}},
	}
}

// Width returns the effective segment width from the width field.
func (p *Panel) Width() float64 {
	return input.ParseWidth(p.widthText)
}

// Text returns the current contents of a field.
func (p *Panel) Text(f Field) string {
	switch f {
	case FieldWidth:
		return p.widthText
	case FieldCoordinates:
		return p.coordText
	default:
		return ""
	}
}

// Focus returns the focused field.
func (p *Panel) Focus() Field {
	return p.focus
}

// ShowNotice opens a blocking notice that must be dismissed before any
// other input is handled.
func (p *Panel) ShowNotice(msg string) {
	p.notice = msg
}

// Notice returns the open notice text, or "" when none is shown.
func (p *Panel) Notice() string {
	return p.notice
}

// Update processes one tick of input.
func (p *Panel) Update() Result {
	if p.notice != "" {
		p.updateNotice()
		return Result{}
	}

	if p.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		mx, my := p.input.GetCursorPosition()
		return p.handleClick(mx, my)
	}

	if p.input.IsKeyJustPressed(render.KeyTab) {
		p.focus = (p.focus + 1) % 3
		return Result{}
	}

	if p.focus == FieldNone {
		if p.input.IsKeyJustPressed(render.KeyR) {
			return Result{Event: input.RandomClick{}}
		}
		if p.input.IsKeyJustPressed(render.KeyP) {
			return Result{Export: true}
		}
		return Result{}
	}

	if p.input.IsKeyJustPressed(render.KeyEscape) {
		p.focus = FieldNone
		return Result{}
	}
	if p.input.IsKeyJustPressed(render.KeyEnter) {
		if p.focus == FieldCoordinates {
			return p.submitCoordinates()
		}
		p.focus = FieldNone
		return Result{}
	}

	p.handleTextInput()
	return Result{}
}

func (p *Panel) updateNotice() {
	// Swallow typed characters so they do not leak into a field later
	p.input.AppendInputChars(nil)

	if p.input.IsKeyJustPressed(render.KeyEnter) ||
		p.input.IsKeyJustPressed(render.KeyEscape) ||
		p.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		p.notice = ""
	}
}

func (p *Panel) handleClick(mx, my int) Result {
	if my >= Height {
		return p.canvasClick(mx, my)
	}

	switch {
	case pointInRect(mx, my, p.widthArea):
		p.focus = FieldWidth
		return Result{}
	case pointInRect(mx, my, p.coordArea):
		p.focus = FieldCoordinates
		return Result{}
	}

	for _, b := range p.buttons {
		if !pointInRect(mx, my, b.area) {
			continue
		}
		p.focus = FieldNone
		switch b.id {
		case buttonRandom:
			return Result{Event: input.RandomClick{}}
		case buttonAdd:
			return p.submitCoordinates()
		case buttonExport:
			return Result{Export: true}
		}
	}

	return p.canvasClick(mx, my)
}

func (p *Panel) canvasClick(mx, my int) Result {
	p.focus = FieldNone
	return Result{Event: input.CanvasClick{X: float64(mx), Y: float64(my)}}
}

func (p *Panel) submitCoordinates() Result {
	pt, err := input.ParseCoordinates(p.coordText)
	if err != nil {
		log.Printf("Rejected coordinates: %v", err)
		p.ShowNotice("Please enter valid x,y coordinates")
		return Result{}
	}
	return Result{Event: input.CustomCoordinates{X: pt.X, Y: pt.Y}}
}

func (p *Panel) handleTextInput() {
	text := p.focusedText()
	if text == nil {
		return
	}

	// Handle backspace
	if p.input.IsKeyJustPressed(render.KeyBackspace) && len(*text) > 0 {
		r := []rune(*text)
		*text = string(r[:len(r)-1])
	}

	// Handle character input
	for _, c := range p.input.AppendInputChars(nil) {
		if len([]rune(*text)) < maxFieldLen {
			*text += string(c)
		}
	}
}

func (p *Panel) focusedText() *string {
	switch p.focus {
	case FieldWidth:
		return &p.widthText
	case FieldCoordinates:
		return &p.coordText
	default:
		return nil
	}
}

// Draw renders the control strip and any open notice.
func (p *Panel) Draw(screen render.Image) {
	w, h := screen.Size()

	p.renderer.FillRect(screen, 0, 0, float32(w), Height, panelColor)
	p.renderer.FillRect(screen, 0, Height-1, float32(w), 1, borderColor)

	p.renderer.DrawText(screen, "Width", 12, 10, labelColor)
	p.drawField(screen, p.widthArea, p.widthText, p.focus == FieldWidth)

	p.renderer.DrawText(screen, "x,y", 170, 10, labelColor)
	p.drawField(screen, p.coordArea, p.coordText, p.focus == FieldCoordinates)

	for _, b := range p.buttons {
		p.renderer.FillRect(screen, float32(b.area.x), float32(b.area.y), float32(b.area.w), float32(b.area.h), color.White)
		p.renderer.StrokeRect(screen, float32(b.area.x), float32(b.area.y), float32(b.area.w), float32(b.area.h), 1, borderColor)
		tw, th := p.renderer.MeasureText(b.label)
		p.renderer.DrawText(screen, b.label, b.area.x+(b.area.w-tw)/2, b.area.y+(b.area.h-th)/2, textColor)
	}

	if p.notice != "" {
		p.drawNotice(screen, w, h)
	}
}

func (p *Panel) drawField(screen render.Image, r rect, text string, focused bool) {
	border := borderColor
	if focused {
		border = focusColor
		text += "_"
	}
	p.renderer.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), color.White)
	p.renderer.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, border)
	p.renderer.DrawText(screen, text, r.x+4, r.y+5, textColor)
}

func (p *Panel) drawNotice(screen render.Image, w, h int) {
	p.renderer.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor)

	hint := "Press Enter or click to continue"
	tw, th := p.renderer.MeasureText(p.notice)
	hw, _ := p.renderer.MeasureText(hint)
	boxW := max(tw, hw) + 40
	boxH := th*2 + 40
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	p.renderer.FillRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), noticeColor)
	p.renderer.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 2, borderColor)
	p.renderer.DrawText(screen, p.notice, x+(boxW-tw)/2, y+14, textColor)
	p.renderer.DrawText(screen, hint, x+(boxW-hw)/2, y+22+th, labelColor)
}
