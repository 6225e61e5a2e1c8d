package models

import (
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/sitepress/sitepress-backend/pure_utils"
)

type AdType string

const (
	AdTypeImage AdType = "image"
	AdTypeText  AdType = "text"
)

var AdTypes = []AdType{AdTypeImage, AdTypeText}

func (t AdType) IsValid() bool {
	return slices.Contains(AdTypes, t)
}

type AdSize string

const (
	AdSizeLarge    AdSize = "large"
	AdSizeMedium   AdSize = "medium"
	AdSizeSmall    AdSize = "small"
	AdSizeFloating AdSize = "floating"
	AdSizePopup    AdSize = "popup"
)

var AdSizes = []AdSize{AdSizeLarge, AdSizeMedium, AdSizeSmall, AdSizeFloating, AdSizePopup}

func (s AdSize) IsValid() bool {
	return slices.Contains(AdSizes, s)
}

func AdSizeFrom(s string) (AdSize, error) {
	size := AdSize(s)
	if !size.IsValid() {
		return "", errors.Wrapf(BadParameterError, "unknown ad size %q", s)
	}
	return size, nil
}

type Ad struct {
	Id        string
	Type      AdType
	ImageUrl  *string
	LinkUrl   string
	AltText   *string
	Content   *string
	Size      AdSize
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateAdAttributes is a partial ad. Unset fields are left untouched, fields set to
// null are cleared.
type UpdateAdAttributes struct {
	Id       string
	Type     *AdType
	ImageUrl pure_utils.Null[string]
	LinkUrl  pure_utils.Null[string]
	AltText  pure_utils.Null[string]
	Content  pure_utils.Null[string]
	Size     *AdSize
}

// Merge applies the fields present in the patch on top of the ad.
func (ad Ad) Merge(patch UpdateAdAttributes) Ad {
	if patch.Type != nil {
		ad.Type = *patch.Type
	}
	if patch.ImageUrl.Set {
		ad.ImageUrl = patch.ImageUrl.Ptr()
	}
	if patch.LinkUrl.Set {
		// the link is mandatory: a null link fails validation
		ad.LinkUrl = patch.LinkUrl.Value()
	}
	if patch.AltText.Set {
		ad.AltText = patch.AltText.Ptr()
	}
	if patch.Content.Set {
		ad.Content = patch.Content.Ptr()
	}
	if patch.Size != nil {
		ad.Size = *patch.Size
	}
	return ad
}

// Shape clears the fields that do not belong to the ad's variant: image ads carry no
// content, text ads carry no image url nor alt text. Blank strings become null.
func (ad Ad) Shape() Ad {
	ad.LinkUrl = strings.TrimSpace(ad.LinkUrl)
	ad.ImageUrl = blankToNil(ad.ImageUrl)
	ad.AltText = blankToNil(ad.AltText)
	ad.Content = blankToNil(ad.Content)

	switch ad.Type {
	case AdTypeImage:
		ad.Content = nil
	case AdTypeText:
		ad.ImageUrl = nil
		ad.AltText = nil
	}
	return ad
}

func (ad Ad) Validate() error {
	if !ad.Type.IsValid() {
		return errors.Wrapf(BadParameterError, "unknown ad type %q", ad.Type)
	}
	if !ad.Size.IsValid() {
		return errors.Wrapf(BadParameterError, "unknown ad size %q", ad.Size)
	}
	if !isHttpUrl(ad.LinkUrl) {
		return errors.Wrap(BadParameterError, "linkUrl must be an absolute http(s) url")
	}
	switch ad.Type {
	case AdTypeImage:
		if ad.ImageUrl == nil {
			return errors.Wrap(BadParameterError, "imageUrl is required for image ads")
		}
	case AdTypeText:
		if ad.Content == nil {
			return errors.Wrap(BadParameterError, "content is required for text ads")
		}
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isHttpUrl(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
