package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/crossing/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ReplayUI is the panel shown over the board after a win.
type ReplayUI struct {
	UI *ebitenui.UI

	// OnReplay runs once per click of the Replay button
	OnReplay func()

	replayBtn *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

func NewReplayUI(onReplay func()) (*ReplayUI, error) {
	ui := &ReplayUI{OnReplay: onReplay}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *ReplayUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	return nil
}

func (ui *ReplayUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Overlay.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Overlay.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Overlay.TitleColor,
		}),
	))

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Overlay.Message, &ui.normalFace, &widget.LabelColor{
			Idle: cfg.Overlay.TextColor,
		}),
	))

	ui.replayBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32), centered),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.DarkBlue),
			Hover:   image.NewNineSliceColor(cfg.LightBlue),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 70, 120, 255}),
		}),
		widget.ButtonOpts.Text(cfg.Overlay.ButtonLabel, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: color.RGBA{200, 200, 220, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnReplay != nil {
				ui.OnReplay()
			}
		}),
	)
	panel.AddChild(ui.replayBtn)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ReplayUI) Update() {
	ui.UI.Update()
}

func (ui *ReplayUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
