package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

type DBAd struct {
	Id        string      `db:"id"`
	Type      string      `db:"type"`
	ImageUrl  null.String `db:"image_url"`
	LinkUrl   string      `db:"link_url"`
	AltText   null.String `db:"alt_text"`
	Content   null.String `db:"content"`
	Size      string      `db:"size"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

const TABLE_ADS = "ads"

var SelectAdColumn = utils.ColumnList[DBAd]()

func AdaptAd(db DBAd) (models.Ad, error) {
	return models.Ad{
		Id:        db.Id,
		Type:      models.AdType(db.Type),
		ImageUrl:  db.ImageUrl.Ptr(),
		LinkUrl:   db.LinkUrl,
		AltText:   db.AltText.Ptr(),
		Content:   db.Content.Ptr(),
		Size:      models.AdSize(db.Size),
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}
