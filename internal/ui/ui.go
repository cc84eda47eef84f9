package ui

import (
	_ "embed"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"github.com/GoogleCloudPlatform/galog"

	"github.com/Pacmanninja/SteamFolderID/internal/profile"
)

const appID = "io.github.pacmanninja.steamfolderid"

//go:embed icon.png
var iconData []byte

var appIcon = fyne.NewStaticResource("icon.png", iconData)

// Config holds the window geometry.
type Config struct {
	Title          string
	Width          float32
	RowHeight      float32
	MaxVisibleRows int
	AvatarSize     float32
}

func DefaultConfig() Config {
	return Config{
		Title:          "Select Steam Profile",
		Width:          500,
		RowHeight:      90,
		MaxVisibleRows: 5,
		AvatarSize:     64,
	}
}

// Picker is a window listing profiles, clicking one selects it and closes the
// window.
type Picker struct {
	window    fyne.Window
	rows      []*profileRow
	selection profile.Selection
}

func NewPicker(a fyne.App, cfg Config, profiles []profile.Profile) *Picker {
	p := &Picker{window: a.NewWindow(cfg.Title)}

	list := container.NewVBox()
	for _, prof := range profiles {
		path := prof.Path
		row := newProfileRow(prof, cfg.AvatarSize, func() { p.choose(path) })
		p.rows = append(p.rows, row)
		list.Add(row)
	}

	p.window.SetContent(container.NewVScroll(list))
	p.window.Resize(WindowSize(cfg, len(profiles)))
	p.window.SetFixedSize(true)
	p.window.CenterOnScreen()
	p.window.SetMaster()
	p.window.SetOnClosed(func() {
		if !p.selection.OK {
			galog.Infof("Profile window closed without a selection")
		}
	})
	return p
}

// choose is the only transition out of the idle state, later clicks are
// ignored.
func (p *Picker) choose(path string) {
	if p.selection.OK {
		return
	}
	p.selection = profile.Selection{Path: path, OK: true}
	p.window.Close()
}

// Run shows the window and blocks until it is closed.
func (p *Picker) Run() profile.Selection {
	p.window.ShowAndRun()
	return p.selection
}

func (p *Picker) Selection() profile.Selection {
	return p.selection
}

// WindowSize is as tall as the profile rows, up to MaxVisibleRows of them;
// the list scrolls beyond that.
func WindowSize(cfg Config, profiles int) fyne.Size {
	rows := min(cfg.MaxVisibleRows, profiles)
	if rows < 1 {
		rows = 1
	}
	return fyne.NewSize(cfg.Width, float32(rows)*cfg.RowHeight)
}

// Selector shows profiles in a fresh fyne app.
type Selector struct {
	Config Config
}

func (s Selector) Select(profiles []profile.Profile) profile.Selection {
	a := app.NewWithID(appID)
	a.SetIcon(appIcon)
	a.Settings().SetTheme(pickerTheme{Theme: theme.DefaultTheme()})
	return NewPicker(a, s.Config, profiles).Run()
}

var (
	backgroundColor = color.NRGBA{R: 0x17, G: 0x1C, B: 0x25, A: 0xFF}
	foregroundColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	subtleColor     = color.NRGBA{R: 0x8F, G: 0x98, B: 0xA0, A: 0xFF}
)

// pickerTheme is the dark Steam palette over the default theme.
type pickerTheme struct {
	fyne.Theme
}

func (t pickerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return backgroundColor
	case theme.ColorNameForeground:
		return foregroundColor
	}
	return t.Theme.Color(name, theme.VariantDark)
}
