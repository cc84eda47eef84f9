package steam_webapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/GoogleCloudPlatform/galog"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var errNoAvatarURL = errors.New("profile has no avatar url")

// GetAvatar downloads the image at avatarURL and scales it to a square of the
// configured avatar size.
func (c *Client) GetAvatar(ctx context.Context, avatarURL string) (image.Image, error) {
	if avatarURL == "" {
		return nil, errNoAvatarURL
	}
	body, err := c.get(ctx, avatarURL)
	if err != nil {
		return nil, err
	}
	src, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decoding avatar %s: %w", avatarURL, err)
	}
	return resize(src, c.avatarSize), nil
}

// AvatarOrPlaceholder is GetAvatar that never fails, a blank image of the
// avatar size stands in for anything that couldn't be fetched or decoded.
func (c *Client) AvatarOrPlaceholder(ctx context.Context, avatarURL string) image.Image {
	img, err := c.GetAvatar(ctx, avatarURL)
	if err != nil {
		galog.Warnf("Avatar load failed: %v", err)
		return Placeholder(c.avatarSize)
	}
	return img
}

// Placeholder returns a fully transparent size x size image.
func Placeholder(size int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

func resize(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
