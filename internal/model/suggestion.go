package model

// SuggestionRequest represents a password suggestion request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type SuggestionRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// SuggestionResponse represents a password suggestion response.
type SuggestionResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
