package model

// UploadPhotoRequest has no body fields; the image is read from the multipart
// form of the request.
type UploadPhotoRequest struct{}

type UploadPhotoResponse struct {
	Url string `json:"url"`
}
