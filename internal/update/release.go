package update

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/insushim/neis-helper/internal/model"
)

var (
	// ErrMissingTag is returned when the release document has no tag_name
	ErrMissingTag = errors.New("release has no tag_name")

	// ErrMissingAssetURL is returned when the first asset has no download URL
	ErrMissingAssetURL = errors.New("release asset has no browser_download_url")
)

// ParseRelease decodes a release metadata document
func ParseRelease(body []byte) (*model.Release, error) {
	var release model.Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if release.TagName == "" {
		return nil, ErrMissingTag
	}
	return &release, nil
}

// Compare returns an offer when the release version differs from installed.
// Versions are compared as plain strings; any difference counts as newer.
func Compare(release *model.Release, installed string) (*model.UpdateOffer, error) {
	latest := release.Version()
	if latest == installed {
		return nil, nil
	}

	url, err := release.DownloadURL()
	if err != nil {
		return nil, err
	}
	if url == "" {
		return nil, ErrMissingAssetURL
	}

	return &model.UpdateOffer{Version: latest, DownloadURL: url}, nil
}
