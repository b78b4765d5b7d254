package model

import (
	"errors"
	"strings"
)

// ErrNoAssets is returned when a release lists no downloadable assets
var ErrNoAssets = errors.New("release has no assets")

// Asset is a single downloadable file attached to a release
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Release is the subset of the release metadata document the shell reads
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// Version returns the tag with one leading "v" removed
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// DownloadURL returns the first asset's download URL. Only the first
// asset is ever consulted.
func (r *Release) DownloadURL() (string, error) {
	if len(r.Assets) == 0 {
		return "", ErrNoAssets
	}
	return r.Assets[0].BrowserDownloadURL, nil
}

// UpdateOffer is what the update dialog presents to the user
type UpdateOffer struct {
	Version     string
	DownloadURL string
}
