package models

// UploadedFile describes a file stored under the public static directory.
type UploadedFile struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// ValidationResult is the outcome of checking an upload before it is saved.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
