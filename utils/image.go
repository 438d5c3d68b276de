package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ImageUpload holds a decoded image ready to be sent as a multipart part.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// extensions for the image types the backend accepts
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IsDataURI reports whether the value is an embedded base64 image
// ("data:image/png;base64,....") rather than a passthrough URL.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, "data:image/")
}

// IsImageURL reports whether the value is an http(s) URL to pass through
// unchanged under the imageUrl field.
func IsImageURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// DecodeDataURI converts a base64 data URI into an upload part with a
// generated filename. The raw base64 never leaves this boundary; callers send
// the decoded bytes as the multipart "image" field.
func DecodeDataURI(dataURI string) (*ImageUpload, error) {
	if !IsDataURI(dataURI) {
		return nil, fmt.Errorf("not a data URI")
	}

	head, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return nil, fmt.Errorf("malformed data URI")
	}

	contentType := strings.TrimPrefix(head, "data:")
	contentType = strings.TrimSuffix(contentType, ";base64")

	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %v", err)
	}
	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("%s", ErrImageTooLarge)
	}

	return &ImageUpload{
		Filename:    uuid.New().String() + ext,
		ContentType: contentType,
		Data:        data,
	}, nil
}
