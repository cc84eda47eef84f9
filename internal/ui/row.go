package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Pacmanninja/SteamFolderID/internal/profile"
)

const (
	nameTextSize  = 22
	loginTextSize = 12
)

// profileRow shows an avatar and a name, the whole row is the click target.
type profileRow struct {
	widget.BaseWidget
	profile    profile.Profile
	avatarSize float32
	onTapped   func()
}

func newProfileRow(p profile.Profile, avatarSize float32, onTapped func()) *profileRow {
	row := &profileRow{profile: p, avatarSize: avatarSize, onTapped: onTapped}
	row.ExtendBaseWidget(row)
	return row
}

func (r *profileRow) CreateRenderer() fyne.WidgetRenderer {
	avatar := canvas.NewImageFromImage(r.profile.Avatar)
	avatar.FillMode = canvas.ImageFillContain
	avatar.SetMinSize(fyne.NewSquareSize(r.avatarSize))

	name := canvas.NewText(r.profile.Name, foregroundColor)
	name.TextSize = nameTextSize
	name.TextStyle = fyne.TextStyle{Bold: true}

	texts := container.NewVBox(layout.NewSpacer(), name)
	if r.profile.MostRecent && r.profile.AccountName != "" {
		login := canvas.NewText("Last signed in as "+r.profile.AccountName, subtleColor)
		login.TextSize = loginTextSize
		texts.Add(login)
	}
	texts.Add(layout.NewSpacer())

	return widget.NewSimpleRenderer(container.NewPadded(container.NewHBox(avatar, texts)))
}

func (r *profileRow) Tapped(*fyne.PointEvent) {
	r.onTapped()
}

func (r *profileRow) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}
