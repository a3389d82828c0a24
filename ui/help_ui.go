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
	"golang.org/x/image/font/gofont/goregular"
)

var helpLines = []string{
	"Click the tree   hang an ornament",
	"Space / P        pause the animation",
	"F3               debug overlay",
	"F / F11          toggle fullscreen",
	"H / F1           show or hide this panel",
	"Esc              quit",
}

// HelpUI holds the ebitenui controls panel
type HelpUI struct {
	UI *ebitenui.UI

	ornamentLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewHelpUI creates the controls panel anchored to the top-right corner
func NewHelpUI() *HelpUI {
	hui := &HelpUI{}
	hui.loadFonts()
	hui.buildUI()
	return hui
}

func (hui *HelpUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	hui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	hui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (hui *HelpUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 20, G: 20, B: 40, A: 210})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CONTROLS", &hui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 215, 0, 255},
		}),
	))

	for _, line := range helpLines {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &hui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{230, 230, 230, 255},
			}),
		))
	}

	hui.ornamentLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 105, 180, 255},
		}),
	)
	panel.AddChild(hui.ornamentLabel)

	rootContainer.AddChild(panel)

	hui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update refreshes the ornament counter and runs the UI's Update method
func (hui *HelpUI) Update(ornaments int) {
	hui.ornamentLabel.Label = fmt.Sprintf("Ornaments on the tree: %d", ornaments)
	hui.UI.Update()
}

// Draw renders the panel on top of the scene
func (hui *HelpUI) Draw(screen *ebiten.Image) {
	hui.UI.Draw(screen)
}
