package main

import (
	"errors"
	"image/png"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"herogen-ebiten/core"
)

// GeneratorScene is the single screen of the application: a title, the
// bordered image area, the hero name label and the three role buttons.
type GeneratorScene struct {
	resources *SharedResources
	ui        *ebitenui.UI

	imagePanel  *widget.Container
	heroImage   *widget.Graphic
	panelLabel  *widget.Text
	resultLabel *widget.Text

	// emptyImage is what the Graphic shows when no hero image is displayed.
	emptyImage *ebiten.Image
}

func NewGeneratorScene(res *SharedResources) *GeneratorScene {
	s := &GeneratorScene{
		resources:  res,
		emptyImage: ebiten.NewImage(1, 1),
	}
	cfg := res.Config.UI
	factory := NewUIFactory(&res.Config, res.Fonts)

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(widget.Insets{Top: 15, Bottom: cfg.Buttons.BottomMargin}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	rootContainer.AddChild(panel)

	titleText := widget.NewText(
		widget.TextOpts.Text(cfg.Title.Text, res.Fonts.Title, cfg.Colors.Text),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
	panel.AddChild(titleText)

	s.imagePanel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(factory.NewImagePanelBackground()),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.ImageArea.Width, cfg.ImageArea.Height),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(s.imagePanel)

	s.heroImage = widget.NewGraphic(
		widget.GraphicOpts.Image(s.emptyImage),
		widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	s.imagePanel.AddChild(s.heroImage)

	s.panelLabel = widget.NewText(
		widget.TextOpts.Text("", res.Fonts.Body, cfg.Colors.Text),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	s.imagePanel.AddChild(s.panelLabel)

	s.resultLabel = widget.NewText(
		widget.TextOpts.Text(cfg.Labels.Prompt, res.Fonts.Body, cfg.Colors.Text),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
	panel.AddChild(s.resultLabel)

	buttonRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.Buttons.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
	panel.AddChild(buttonRow)

	roles := core.Roles()
	labels := make([]string, len(roles))
	for i, role := range roles {
		labels[i] = string(role)
	}
	uniformWidth := factory.UniformButtonWidth(labels)

	for _, role := range roles {
		button := factory.NewRoleButton(string(role), uniformWidth, func(args *widget.ButtonClickedEventArgs) {
			s.onRoleClicked(role)
		})
		buttonRow.AddChild(button)
	}

	s.ui = &ebitenui.UI{Container: rootContainer}
	return s
}

// onRoleClicked draws a random hero from the clicked role's pool and updates
// the name label and the image area.
func (s *GeneratorScene) onRoleClicked(role core.Role) {
	labels := s.resources.Config.UI.Labels

	hero, err := core.Pick(core.PoolFor(role), s.resources.Rand)
	if errors.Is(err, core.ErrEmptyPool) {
		s.resultLabel.Label = labels.EmptyPool
		s.clearHeroImage("")
		return
	}

	s.resultLabel.Label = hero
	s.showHeroImage(hero)
}

// showHeroImage loads images/<hero>.png, scales it to fit the display area
// and renders it. A missing file becomes fallback text in the image area.
func (s *GeneratorScene) showHeroImage(hero string) {
	labels := s.resources.Config.UI.Labels

	path, err := core.FindImage(hero)
	if err != nil {
		s.clearHeroImage(labels.MissingImagePrefix + hero)
		return
	}

	img, err := loadImage(path)
	if err != nil {
		log.Printf("failed to decode %s: %v", path, err)
		s.clearHeroImage(labels.MissingImagePrefix + hero)
		return
	}

	maxW, maxH := s.displayAreaSize()
	srcW, srcH := img.Bounds().Dx(), img.Bounds().Dy()
	dstW, dstH := core.FitSize(srcW, srcH, maxW, maxH)

	scaled := ebiten.NewImage(dstW, dstH)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	opts.Filter = ebiten.FilterLinear
	scaled.DrawImage(img, opts)

	s.heroImage.Image = scaled
	s.panelLabel.Label = ""
}

// displayAreaSize returns the measured inner size of the image panel. Before
// the first layout pass the rect is empty; fall back to the configured
// nominal area.
func (s *GeneratorScene) displayAreaSize() (int, int) {
	area := s.resources.Config.UI.ImageArea
	rect := s.imagePanel.GetWidget().Rect
	w := rect.Dx() - 2*area.BorderWidth
	h := rect.Dy() - 2*area.BorderWidth
	if w <= 0 || h <= 0 {
		return area.Width, area.Height
	}
	return w, h
}

func (s *GeneratorScene) clearHeroImage(message string) {
	s.heroImage.Image = s.emptyImage
	s.panelLabel.Label = message
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func (s *GeneratorScene) Update() error {
	s.ui.Update()
	return nil
}

func (s *GeneratorScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.resources.Config.UI.Colors.Background)
	s.ui.Draw(screen)
}

func (s *GeneratorScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.resources.Config.UI.Screen.Width, s.resources.Config.UI.Screen.Height
}
