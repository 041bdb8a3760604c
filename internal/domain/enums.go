package domain

// SmsStatus represents the notification lifecycle of a purchase.
type SmsStatus string

const (
	SmsStatusUnsent SmsStatus = "unsent"
	SmsStatusSent   SmsStatus = "sent"
	SmsStatusFailed SmsStatus = "failed"
)

// ImageType represents the allowed raffle image upload types.
type ImageType string

const (
	ImageTypeJPG  ImageType = "jpg"
	ImageTypePNG  ImageType = "png"
	ImageTypeWebP ImageType = "webp"
)

// AllowedImageTypes maps ImageType to its MIME content type.
var AllowedImageTypes = map[ImageType]string{
	ImageTypeJPG:  "image/jpeg",
	ImageTypePNG:  "image/png",
	ImageTypeWebP: "image/webp",
}

// AllowedImageContentTypes maps MIME content types back to ImageType.
var AllowedImageContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
	"image/webp": ImageTypeWebP,
}

// AllowedImageExtensions maps file extensions (without dot) to ImageType.
var AllowedImageExtensions = map[string]ImageType{
	"jpg":  ImageTypeJPG,
	"jpeg": ImageTypeJPG,
	"png":  ImageTypePNG,
	"webp": ImageTypeWebP,
}
