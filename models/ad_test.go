package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitepress/sitepress-backend/pure_utils"
)

func strPtr(s string) *string { return &s }

func TestAd_Shape(t *testing.T) {
	t.Run("image ad drops content", func(t *testing.T) {
		ad := Ad{
			Type:     AdTypeImage,
			ImageUrl: strPtr("https://cdn.example.com/a.png"),
			AltText:  strPtr(" banner "),
			Content:  strPtr("left over text"),
			LinkUrl:  " https://example.com ",
			Size:     AdSizeLarge,
		}.Shape()

		assert.Nil(t, ad.Content)
		assert.Equal(t, "banner", *ad.AltText)
		assert.Equal(t, "https://example.com", ad.LinkUrl)
		assert.NoError(t, ad.Validate())
	})

	t.Run("text ad drops image fields", func(t *testing.T) {
		ad := Ad{
			Type:     AdTypeText,
			ImageUrl: strPtr("https://cdn.example.com/a.png"),
			AltText:  strPtr("alt"),
			Content:  strPtr("Buy now"),
			LinkUrl:  "https://example.com",
			Size:     AdSizePopup,
		}.Shape()

		assert.Nil(t, ad.ImageUrl)
		assert.Nil(t, ad.AltText)
		assert.Equal(t, "Buy now", *ad.Content)
		assert.NoError(t, ad.Validate())
	})

	t.Run("blank strings become null", func(t *testing.T) {
		ad := Ad{Type: AdTypeImage, ImageUrl: strPtr("  "), AltText: strPtr("")}.Shape()

		assert.Nil(t, ad.ImageUrl)
		assert.Nil(t, ad.AltText)
	})
}

func TestAd_Validate(t *testing.T) {
	valid := Ad{
		Type:     AdTypeImage,
		ImageUrl: strPtr("https://cdn.example.com/a.png"),
		LinkUrl:  "https://example.com",
		Size:     AdSizeSmall,
	}
	assert.NoError(t, valid.Validate())

	cases := map[string]Ad{
		"unknown type":     {Type: "video", ImageUrl: valid.ImageUrl, LinkUrl: valid.LinkUrl, Size: AdSizeSmall},
		"unknown size":     {Type: AdTypeImage, ImageUrl: valid.ImageUrl, LinkUrl: valid.LinkUrl, Size: "huge"},
		"relative link":    {Type: AdTypeImage, ImageUrl: valid.ImageUrl, LinkUrl: "/promo", Size: AdSizeSmall},
		"missing image":    {Type: AdTypeImage, LinkUrl: valid.LinkUrl, Size: AdSizeSmall},
		"missing content":  {Type: AdTypeText, LinkUrl: valid.LinkUrl, Size: AdSizeSmall},
		"ftp link":         {Type: AdTypeText, Content: strPtr("x"), LinkUrl: "ftp://example.com", Size: AdSizeSmall},
		"empty everything": {},
	}
	for name, ad := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, ad.Validate(), BadParameterError)
		})
	}
}

func TestAd_MergeThenShape(t *testing.T) {
	stored := Ad{
		Id:       "ad-id",
		Type:     AdTypeImage,
		ImageUrl: strPtr("https://cdn.example.com/a.png"),
		AltText:  strPtr("alt"),
		LinkUrl:  "https://example.com",
		Size:     AdSizeMedium,
	}
	textType := AdTypeText
	patched := stored.Merge(UpdateAdAttributes{Type: &textType, Content: pure_utils.NullFrom("Now a text ad")}).Shape()

	assert.Equal(t, AdTypeText, patched.Type)
	assert.Nil(t, patched.ImageUrl)
	assert.Nil(t, patched.AltText)
	assert.Equal(t, "Now a text ad", *patched.Content)
	assert.Equal(t, AdSizeMedium, patched.Size)
	assert.NoError(t, patched.Validate())
}

func TestAd_Merge_nullClearsField(t *testing.T) {
	stored := Ad{
		Id:       "ad-id",
		Type:     AdTypeImage,
		ImageUrl: strPtr("https://cdn.example.com/a.png"),
		AltText:  strPtr("old alt"),
		LinkUrl:  "https://example.com",
		Size:     AdSizeMedium,
	}

	t.Run("unset field keeps stored value", func(t *testing.T) {
		patched := stored.Merge(UpdateAdAttributes{Id: "ad-id"}).Shape()
		assert.Equal(t, "old alt", *patched.AltText)
	})

	t.Run("null clears the field", func(t *testing.T) {
		patched := stored.Merge(UpdateAdAttributes{AltText: pure_utils.NullFromPtr[string](nil)}).Shape()
		assert.Nil(t, patched.AltText)
		assert.NoError(t, patched.Validate())
	})

	t.Run("null image url fails validation", func(t *testing.T) {
		patched := stored.Merge(UpdateAdAttributes{ImageUrl: pure_utils.NullFromPtr[string](nil)}).Shape()
		assert.Nil(t, patched.ImageUrl)
		assert.ErrorIs(t, patched.Validate(), BadParameterError)
	})

	t.Run("null link fails validation", func(t *testing.T) {
		patched := stored.Merge(UpdateAdAttributes{LinkUrl: pure_utils.NullFromPtr[string](nil)}).Shape()
		assert.Equal(t, "", patched.LinkUrl)
		assert.ErrorIs(t, patched.Validate(), BadParameterError)
	})
}

func TestAdSizeFrom(t *testing.T) {
	size, err := AdSizeFrom("floating")
	assert.NoError(t, err)
	assert.Equal(t, AdSizeFloating, size)

	_, err = AdSizeFrom("giant")
	assert.ErrorIs(t, err, BadParameterError)
}
