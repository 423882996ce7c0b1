package domain

// Коды ответов API. Совпадают с HTTP-статусами, но дублируются
// в теле ответа, поэтому объявлены отдельно от net/http.
const (
	StatusOK             = 200
	StatusBadRequest     = 400
	StatusForbidden      = 403
	StatusNotFound       = 404
	StatusInvalidRequest = 422
	StatusInternalError  = 500
)

var statusTexts = map[int]string{
	StatusBadRequest:     "Bad Request",
	StatusForbidden:      "Forbidden",
	StatusNotFound:       "Not Found",
	StatusInvalidRequest: "Invalid Request",
	StatusInternalError:  "Internal Server Error",
}

// StatusText возвращает каноничный текст ошибки для кода ответа.
func StatusText(code int) string {
	if text, ok := statusTexts[code]; ok {
		return text
	}
	return "Unknown Error"
}

// AdminLogin — логин, включающий административный режим запроса.
const AdminLogin = "admin"

type Gender int

const (
	GenderUnknown Gender = 0
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
)

func (g Gender) IsValid() bool {
	return g >= GenderUnknown && g <= GenderFemale
}
