package domain

// Схемы запросов. Экземпляры создаются на каждый входящий запрос,
// заполняются пополево из сырого JSON и после ответа не переиспользуются.
// Слоты хранят принятые значения как есть; типизированные геттеры
// дают доступ стадии вычисления.

// MethodRequest внешний конверт запроса: метод, учётные данные
// и непрозрачные аргументы метода.
type MethodRequest struct {
	Account   any
	Login     any
	Token     any
	Arguments any
	Method    any
}

// Fields возвращает описание слотов схемы в порядке объявления.
func (r *MethodRequest) Fields() []FieldSpec {
	return []FieldSpec{
		{Name: "account", Required: false, Nullable: true, Validator: CharField{}, Slot: &r.Account},
		{Name: "login", Required: true, Nullable: true, Validator: CharField{}, Slot: &r.Login},
		{Name: "token", Required: true, Nullable: true, Validator: CharField{}, Slot: &r.Token},
		{Name: "arguments", Required: true, Nullable: true, Validator: ArgumentsField{}, Slot: &r.Arguments},
		{Name: "method", Required: true, Nullable: false, Validator: CharField{}, Slot: &r.Method},
	}
}

// IsAdmin признак административного запроса.
func (r *MethodRequest) IsAdmin() bool {
	return stringValue(r.Login) == AdminLogin
}

func (r *MethodRequest) AccountString() string { return stringValue(r.Account) }
func (r *MethodRequest) LoginString() string   { return stringValue(r.Login) }
func (r *MethodRequest) TokenString() string   { return stringValue(r.Token) }
func (r *MethodRequest) MethodString() string  { return stringValue(r.Method) }

// ArgumentsMap аргументы метода; nil, если аргументы не переданы.
func (r *MethodRequest) ArgumentsMap() map[string]any {
	args, _ := r.Arguments.(map[string]any)
	return args
}

// OnlineScoreRequest аргументы метода online_score. Все поля опциональны,
// но хотя бы одна пара из HasCouple обязана быть заполнена.
type OnlineScoreRequest struct {
	FirstName any
	LastName  any
	Email     any
	Phone     any
	Birthday  any
	Gender    any
}

func (r *OnlineScoreRequest) Fields() []FieldSpec {
	return []FieldSpec{
		{Name: "first_name", Required: false, Nullable: true, Validator: CharField{}, Slot: &r.FirstName},
		{Name: "last_name", Required: false, Nullable: true, Validator: CharField{}, Slot: &r.LastName},
		{Name: "email", Required: false, Nullable: true, Validator: EmailField{}, Slot: &r.Email},
		{Name: "phone", Required: false, Nullable: true, Validator: PhoneField{}, Slot: &r.Phone},
		{Name: "birthday", Required: false, Nullable: true, Validator: BirthDayField{}, Slot: &r.Birthday},
		{Name: "gender", Required: false, Nullable: true, Validator: GenderField{}, Slot: &r.Gender},
	}
}

// HasCouple межполевой инвариант: заполнена хотя бы одна из пар
// {phone, email}, {birthday, gender}, {first_name, last_name}.
// Проверяется только после успешной валидации всех полей.
func (r *OnlineScoreRequest) HasCouple() bool {
	switch {
	case filled(r.Phone, PhoneField{}) && filled(r.Email, EmailField{}):
		return true
	case filled(r.Birthday, BirthDayField{}) && filled(r.Gender, GenderField{}):
		return true
	case filled(r.FirstName, CharField{}) && filled(r.LastName, CharField{}):
		return true
	}
	return false
}

func (r *OnlineScoreRequest) FirstNameString() string { return stringValue(r.FirstName) }
func (r *OnlineScoreRequest) LastNameString() string  { return stringValue(r.LastName) }
func (r *OnlineScoreRequest) EmailString() string     { return stringValue(r.Email) }
func (r *OnlineScoreRequest) BirthdayString() string  { return stringValue(r.Birthday) }

// PhoneString телефон в десятичной строковой форме независимо от того,
// пришёл он строкой или числом.
func (r *OnlineScoreRequest) PhoneString() string {
	phone, _ := DecimalString(r.Phone)
	return phone
}

// GenderValue пол и признак того, что поле было передано.
func (r *OnlineScoreRequest) GenderValue() (Gender, bool) {
	gender, ok := IntegerValue(r.Gender)
	if !ok {
		return GenderUnknown, false
	}
	return Gender(gender), true
}

// ClientsInterestsRequest аргументы метода clients_interests.
type ClientsInterestsRequest struct {
	ClientIDs any
	Date      any
}

func (r *ClientsInterestsRequest) Fields() []FieldSpec {
	return []FieldSpec{
		{Name: "client_ids", Required: true, Nullable: false, Validator: ClientIDsField{}, Slot: &r.ClientIDs},
		{Name: "date", Required: false, Nullable: true, Validator: DateField{}, Slot: &r.Date},
	}
}

// ClientIDList идентификаторы клиентов после валидации.
func (r *ClientsInterestsRequest) ClientIDList() []int64 {
	raw, _ := r.ClientIDs.([]any)
	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		if id, ok := IntegerValue(v); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *ClientsInterestsRequest) DateString() string { return stringValue(r.Date) }

func stringValue(value any) string {
	s, _ := value.(string)
	return s
}

func filled(value any, validator FieldValidator) bool {
	return value != nil && !validator.IsEmpty(value)
}
