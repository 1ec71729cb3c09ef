package handler

// messageResponse is the standard envelope for plain acknowledgements and all
// 4xx/5xx responses.
type messageResponse struct {
	Message string `json:"message"`
}
