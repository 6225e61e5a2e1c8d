package dto

import "github.com/sitepress/sitepress-backend/models"

type APIUploadedImage struct {
	Key string `json:"key"`
	Url string `json:"url"`
}

func AdaptUploadedImageDto(image models.UploadedImage) APIUploadedImage {
	return APIUploadedImage{Key: image.Key, Url: image.Url}
}
