// Package devices lists phone screen presets so callers can ask for a
// wallpaper by device instead of by pixel size.
package devices

type Device struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Platform string `json:"platform"` // "ios" or "android"
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}
