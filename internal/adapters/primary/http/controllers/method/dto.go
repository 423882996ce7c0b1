package method

// SuccessResponse конверт успешного ответа API.
type SuccessResponse struct {
	Response any `json:"response"`
	Code     int `json:"code"`
}

// ErrorResponse конверт ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
