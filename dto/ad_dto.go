package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/pure_utils"
)

type APIAd struct {
	Id        string      `json:"id"`
	Type      string      `json:"type"`
	ImageUrl  null.String `json:"imageUrl"`
	LinkUrl   string      `json:"linkUrl"`
	AltText   null.String `json:"altText"`
	Content   null.String `json:"content"`
	Size      string      `json:"size"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func AdaptAdDto(ad models.Ad) APIAd {
	return APIAd{
		Id:        ad.Id,
		Type:      string(ad.Type),
		ImageUrl:  null.StringFromPtr(ad.ImageUrl),
		LinkUrl:   ad.LinkUrl,
		AltText:   null.StringFromPtr(ad.AltText),
		Content:   null.StringFromPtr(ad.Content),
		Size:      string(ad.Size),
		CreatedAt: ad.CreatedAt,
		UpdatedAt: ad.UpdatedAt,
	}
}

type AdListQuery struct {
	Size string `form:"size"`
}

type CreateAdBody struct {
	Type     string      `json:"type" binding:"required,oneof=image text"`
	ImageUrl null.String `json:"imageUrl"`
	LinkUrl  string      `json:"linkUrl" binding:"required"`
	AltText  null.String `json:"altText"`
	Content  null.String `json:"content"`
	Size     string      `json:"size" binding:"required,oneof=large medium small floating popup"`
}

func AdaptCreateAd(body CreateAdBody) models.Ad {
	return models.Ad{
		Type:     models.AdType(body.Type),
		ImageUrl: body.ImageUrl.Ptr(),
		LinkUrl:  body.LinkUrl,
		AltText:  body.AltText.Ptr(),
		Content:  body.Content.Ptr(),
		Size:     models.AdSize(body.Size),
	}
}

// UpdateAdBody is merged onto the stored ad. An absent field is left untouched, null or
// an empty string clears an optional field.
type UpdateAdBody struct {
	Type     *string                 `json:"type" binding:"omitempty,oneof=image text"`
	ImageUrl pure_utils.Null[string] `json:"imageUrl"`
	LinkUrl  pure_utils.Null[string] `json:"linkUrl"`
	AltText  pure_utils.Null[string] `json:"altText"`
	Content  pure_utils.Null[string] `json:"content"`
	Size     *string                 `json:"size" binding:"omitempty,oneof=large medium small floating popup"`
}

func AdaptUpdateAdAttributes(id string, body UpdateAdBody) models.UpdateAdAttributes {
	attrs := models.UpdateAdAttributes{
		Id:       id,
		ImageUrl: body.ImageUrl,
		LinkUrl:  body.LinkUrl,
		AltText:  body.AltText,
		Content:  body.Content,
	}
	if body.Type != nil {
		t := models.AdType(*body.Type)
		attrs.Type = &t
	}
	if body.Size != nil {
		s := models.AdSize(*body.Size)
		attrs.Size = &s
	}
	return attrs
}
