package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/ecs/entity"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI is the panel with the two speed sliders and the planet buttons.
type ControlsUI struct {
	UI *ebitenui.UI

	world      *ecs.World
	controller ecs.Entity
	panel      *widget.Container

	rotation      *widget.Slider
	orbit         *widget.Slider
	rotationLabel *widget.Text
	orbitLabel    *widget.Text

	// focusButtons holds one button per focusable body, in catalogue order.
	focusButtons []*widget.Button
	focusNames   []string
}

func newControlsTheme(face *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xc8}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x40, A: 0xff}),
				Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x5c, A: 0xff}),
				Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x2c, A: 0xff}),
			},
			TextFace:  face,
			TextColor: &widget.ButtonTextColor{Idle: color.White},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage:  sliderTrack(),
			HandleImage: sliderHandle(),
		},
	}
}

func sliderTrack() *widget.SliderTrackImage {
	return &widget.SliderTrackImage{
		Idle:  imageui.NewNineSliceColor(color.NRGBA{R: 0x60, G: 0x60, B: 0x70, A: 0xff}),
		Hover: imageui.NewNineSliceColor(color.NRGBA{R: 0x70, G: 0x70, B: 0x80, A: 0xff}),
	}
}

func sliderHandle() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xb1, B: 0x3b, A: 0xff}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xc8, B: 0x6e, A: 0xff}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0xd9, G: 0x8f, B: 0x20, A: 0xff}),
	}
}

func loadFace() text.Face {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		slog.Warn("controls: goregular unavailable, using basicfont", "err", err)
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return &text.GoTextFace{Source: src, Size: 14}
}

// NewControlsUI builds the control panel for a scene.
func NewControlsUI(w *ecs.World, s *entity.SolarSystem) (*ControlsUI, error) {
	speeds, ok := ecs.Get(w, s.Controller, component.SpeedsComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("controls: scene has no speeds")
	}

	face := loadFace()
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newControlsTheme(&face)
	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	c := &ControlsUI{UI: ui, world: w, controller: s.Controller}

	c.rotationLabel = widget.NewText(widget.TextOpts.Text(speedLabel("Rotation speed", speeds.RotationSpeed), &face, textColor))
	c.rotation = widget.NewSlider(
		widget.SliderOpts.MinMax(0, speeds.Steps),
		widget.SliderOpts.Images(sliderTrack(), sliderHandle()),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 16)),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			c.setSpeed(args.Current, true)
		}),
	)
	c.rotation.Current = tickFromSpeed(speeds.RotationSpeed, speeds.RotationMax, speeds.Steps)

	c.orbitLabel = widget.NewText(widget.TextOpts.Text(speedLabel("Orbit speed", speeds.OrbitSpeed), &face, textColor))
	c.orbit = widget.NewSlider(
		widget.SliderOpts.MinMax(0, speeds.Steps),
		widget.SliderOpts.Images(sliderTrack(), sliderHandle()),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 16)),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			c.setSpeed(args.Current, false)
		}),
	)
	c.orbit.Current = tickFromSpeed(speeds.OrbitSpeed, speeds.OrbitMax, speeds.Steps)

	buttons := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewGridLayout(
		widget.GridLayoutOpts.Columns(4),
		widget.GridLayoutOpts.Spacing(4, 4),
		widget.GridLayoutOpts.Stretch([]bool{true, true, true, true}, nil),
	)))
	for _, name := range s.Focusable(w) {
		button := widget.NewButton(
			widget.ButtonOpts.Text(buttonLabel(name), &face, ui.PrimaryTheme.ButtonTheme.TextColor),
			widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				c.focus(name)
			}),
		)
		c.focusButtons = append(c.focusButtons, button)
		c.focusNames = append(c.focusNames, name)
		buttons.AddChild(button)
	}

	c.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(ui.PrimaryTheme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	c.panel.AddChild(c.rotationLabel)
	c.panel.AddChild(c.rotation)
	c.panel.AddChild(c.orbitLabel)
	c.panel.AddChild(c.orbit)
	c.panel.AddChild(buttons)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(c.panel)
	ui.Container = root

	return c, nil
}

// Contains reports whether a screen point lies over the panel.
func (c *ControlsUI) Contains(x, y int) bool {
	if c == nil || c.panel == nil {
		return false
	}
	r := c.panel.GetWidget().Rect
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// Sync moves the sliders to the current speeds, e.g. after a reload
// changed the ranges.
func (c *ControlsUI) Sync() {
	speeds, ok := ecs.Get(c.world, c.controller, component.SpeedsComponent.Kind())
	if !ok {
		return
	}
	c.rotation.Min, c.rotation.Max = 0, speeds.Steps
	c.orbit.Min, c.orbit.Max = 0, speeds.Steps
	c.rotation.Current = tickFromSpeed(speeds.RotationSpeed, speeds.RotationMax, speeds.Steps)
	c.orbit.Current = tickFromSpeed(speeds.OrbitSpeed, speeds.OrbitMax, speeds.Steps)
	c.rotationLabel.Label = speedLabel("Rotation speed", speeds.RotationSpeed)
	c.orbitLabel.Label = speedLabel("Orbit speed", speeds.OrbitSpeed)
}

func (c *ControlsUI) focus(name string) {
	if err := entity.FocusCamera(c.world, name); err != nil {
		slog.Warn("controls: focus", "body", name, "err", err)
	}
}

func (c *ControlsUI) setSpeed(tick int, rotation bool) {
	speeds, ok := ecs.Get(c.world, c.controller, component.SpeedsComponent.Kind())
	if !ok {
		return
	}
	if rotation {
		speeds.RotationSpeed = speedFromTick(tick, speeds.RotationMax, speeds.Steps)
		c.rotationLabel.Label = speedLabel("Rotation speed", speeds.RotationSpeed)
		return
	}
	speeds.OrbitSpeed = speedFromTick(tick, speeds.OrbitMax, speeds.Steps)
	c.orbitLabel.Label = speedLabel("Orbit speed", speeds.OrbitSpeed)
}

// speedFromTick maps slider ticks [0, steps] linearly onto [0, limit].
func speedFromTick(tick int, limit float64, steps int) float64 {
	if steps <= 0 {
		return 0
	}
	tick = max(0, min(steps, tick))
	return float64(tick) / float64(steps) * limit
}

func tickFromSpeed(speed, limit float64, steps int) int {
	if limit <= 0 || steps <= 0 {
		return 0
	}
	tick := int(math.Round(speed / limit * float64(steps)))
	return max(0, min(steps, tick))
}

func speedLabel(name string, v float64) string {
	return fmt.Sprintf("%s: %.4f", name, v)
}

func buttonLabel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
