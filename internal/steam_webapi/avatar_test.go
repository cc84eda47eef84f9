package steam_webapi

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGetAvatarResizes(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	data := encodePNG(t, 184, 184, red)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	})

	img, err := client.GetAvatar(context.Background(), client.baseURL+"/avatar.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	r, g, b, a := img.At(32, 32).RGBA()
	assert.InDelta(t, 0xffff, r, 0x100)
	assert.InDelta(t, 0, g, 0x100)
	assert.InDelta(t, 0, b, 0x100)
	assert.InDelta(t, 0xffff, a, 0x100)
}

func TestGetAvatarErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/garbage.jpg":
			w.Write([]byte("definitely not an image"))
		default:
			http.NotFound(w, r)
		}
	})

	for _, avatarURL := range []string{"", client.baseURL + "/garbage.jpg", client.baseURL + "/missing.jpg", "http://%zz"} {
		_, err := client.GetAvatar(context.Background(), avatarURL)
		assert.Error(t, err, "GetAvatar(%q)", avatarURL)
	}
}

func TestAvatarOrPlaceholder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	img := client.AvatarOrPlaceholder(context.Background(), client.baseURL+"/avatar.jpg")
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	_, _, _, a := img.At(10, 10).RGBA()
	assert.Zero(t, a, "placeholder should be blank")
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(32)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
}
