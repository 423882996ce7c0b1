package scoring

import (
	"errors"

	"github.com/Erebuz/3-api-validator/internal/domain"
)

// ValidateOnlineScore заполняет схему online_score из сырых аргументов.
//
// Ошибки собираются по всем полям, а не до первой: каждое поле даёт
// точное сообщение "Incorrect <name> value". Список has содержит имена
// переданных полей независимо от исхода их валидации — он нужен
// вызывающему для наблюдаемости. Межполевой инвариант проверяется
// только когда все поля по отдельности валидны.
func ValidateOnlineScore(arguments map[string]any) (*domain.OnlineScoreRequest, []string, []string) {
	req := &domain.OnlineScoreRequest{}

	var errs []string
	var has []string

	for _, field := range req.Fields() {
		value := argValue(arguments, field.Name)
		if err := field.Assign(value); err != nil {
			errs = append(errs, fieldMessage(err))
		}
		if value != nil {
			has = append(has, field.Name)
		}
	}

	if len(errs) > 0 {
		return nil, errs, has
	}

	if !req.HasCouple() {
		return nil, []string{"No couple"}, has
	}

	return req, nil, has
}

// ValidateClientsInterests заполняет схему clients_interests.
// nclients считается от сырого значения client_ids до валидации,
// даже если она потом не пройдёт.
func ValidateClientsInterests(arguments map[string]any) (*domain.ClientsInterestsRequest, []string, int) {
	req := &domain.ClientsInterestsRequest{}

	nclients := rawClientCount(arguments)

	var errs []string
	for _, field := range req.Fields() {
		if err := field.Assign(argValue(arguments, field.Name)); err != nil {
			errs = append(errs, fieldMessage(err))
		}
	}

	if len(errs) > 0 {
		return nil, errs, nclients
	}

	return req, nil, nclients
}

func argValue(arguments map[string]any, name string) any {
	value, ok := arguments[name]
	if !ok {
		return nil
	}
	return value
}

func rawClientCount(arguments map[string]any) int {
	if ids, ok := arguments["client_ids"].([]any); ok {
		return len(ids)
	}
	return 0
}

func fieldMessage(err error) string {
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message()
	}
	return err.Error()
}
