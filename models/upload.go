package models

import "io"

const MaxImageUploadSize = 5 * 1024 * 1024

type Blob struct {
	FileName    string
	ContentType string
	ReadCloser  io.ReadCloser
}

type UploadedImage struct {
	Key string
	Url string
}
