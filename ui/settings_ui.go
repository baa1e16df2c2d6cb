package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/solview/lumenring/config"
	"github.com/solview/lumenring/systems"
)

// SettingsUI is the ebitenui parameter panel for the auto-pilot pointer.
type SettingsUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Widget references for updates
	modeButton      *widget.Button
	debugButton     *widget.Button
	radiusLabel     *widget.Label
	speedMinLabel   *widget.Label
	speedMaxLabel   *widget.Label
	randomnessLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSettingsUI creates the parameter panel bound to the given ECS.
func NewSettingsUI(e *ecs.ECS) *SettingsUI {
	sui := &SettingsUI{ecs: e}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *SettingsUI) buildUI() {
	// Root container anchors the panel to the right edge
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panelPadding := widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 15, 25, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&panelPadding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("AUTO PILOT", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(title)

	panel.AddChild(sui.buildModeRow())
	sui.radiusLabel = sui.addStepperRow(panel, cfg.SettingsPanel.Radius.Label,
		func() { systems.AdjustRadius(sui.ecs, -1) },
		func() { systems.AdjustRadius(sui.ecs, 1) })
	sui.speedMinLabel = sui.addStepperRow(panel, cfg.SettingsPanel.SpeedMin.Label,
		func() { systems.AdjustSpeedMin(sui.ecs, -1) },
		func() { systems.AdjustSpeedMin(sui.ecs, 1) })
	sui.speedMaxLabel = sui.addStepperRow(panel, cfg.SettingsPanel.SpeedMax.Label,
		func() { systems.AdjustSpeedMax(sui.ecs, -1) },
		func() { systems.AdjustSpeedMax(sui.ecs, 1) })
	sui.randomnessLabel = sui.addStepperRow(panel, cfg.SettingsPanel.Randomness.Label,
		func() { systems.AdjustRandomness(sui.ecs, -1) },
		func() { systems.AdjustRandomness(sui.ecs, 1) })
	panel.AddChild(sui.buildDebugRow())

	hint := widget.NewLabel(
		widget.LabelOpts.Text("Tab closes this panel", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 150, 255},
		}),
	)
	panel.AddChild(hint)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (sui *SettingsUI) buildModeRow() *widget.Container {
	row := sui.newRow()

	label := widget.NewLabel(
		widget.LabelOpts.Text("Mode", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(label)

	sui.modeButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(modeLabel(), &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 100, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.CycleMode(sui.ecs)
			sui.UpdateUI()
		}),
	)
	row.AddChild(sui.modeButton)

	return row
}

func (sui *SettingsUI) buildDebugRow() *widget.Container {
	row := sui.newRow()

	label := widget.NewLabel(
		widget.LabelOpts.Text("Debug dot", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(label)

	sui.debugButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(debugLabel(), &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 100, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ToggleDebug(sui.ecs)
			sui.UpdateUI()
		}),
	)
	row.AddChild(sui.debugButton)

	return row
}

// addStepperRow builds a "label  <  value  >" row and returns the value label.
func (sui *SettingsUI) addStepperRow(panel *widget.Container, name string, dec, inc func()) *widget.Label {
	row := sui.newRow()

	label := widget.NewLabel(
		widget.LabelOpts.Text(name, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(label)

	row.AddChild(sui.stepButton("<", dec))

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(valueLabel)

	row.AddChild(sui.stepButton(">", inc))

	panel.AddChild(row)
	return valueLabel
}

func (sui *SettingsUI) stepButton(caption string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(22, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(caption, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func (sui *SettingsUI) newRow() *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func modeLabel() string {
	labels := cfg.SettingsPanel.ModeLabels
	if i := int(cfg.Motion.Mode); i >= 0 && i < len(labels) {
		return labels[i]
	}
	return "?"
}

func debugLabel() string {
	if cfg.Motion.DebugEnabled {
		return "On"
	}
	return "Off"
}

// UpdateUI refreshes all value labels from the live motion config.
func (sui *SettingsUI) UpdateUI() {
	// Check for nil to handle uninitialized widgets
	if sui.modeButton != nil {
		if textWidget := sui.modeButton.Text(); textWidget != nil {
			textWidget.Label = modeLabel()
		}
	}
	if sui.debugButton != nil {
		if textWidget := sui.debugButton.Text(); textWidget != nil {
			textWidget.Label = debugLabel()
		}
	}
	if sui.radiusLabel != nil {
		sui.radiusLabel.Label = fmt.Sprintf("%.0f", cfg.Motion.CircleRadius)
	}
	if sui.speedMinLabel != nil {
		sui.speedMinLabel.Label = fmt.Sprintf("%.1f", cfg.Motion.SpeedMin)
	}
	if sui.speedMaxLabel != nil {
		sui.speedMaxLabel.Label = fmt.Sprintf("%.1f", cfg.Motion.SpeedMax)
	}
	if sui.randomnessLabel != nil {
		sui.randomnessLabel.Label = fmt.Sprintf("%.1f", cfg.Motion.Randomness)
	}
}

// Update calls the UI's Update method
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}

// Draw renders the panel.
func (sui *SettingsUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}
