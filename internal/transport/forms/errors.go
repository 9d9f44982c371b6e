package forms

// FieldError is a validation failure tied to one named form input.
type FieldError struct {
	Label   string
	Message string
}

// RejectedImageError reports an uploaded file that failed the type/size
// filter. The file itself is treated as absent, but the rejection still
// fails validation.
func RejectedImageError() FieldError {
	return FieldError{
		Label:   "image",
		Message: "Image must be a JPEG or PNG file no larger than 1 MB",
	}
}
