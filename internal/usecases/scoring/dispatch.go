package scoring

import (
	"context"
	"strconv"
	"strings"

	"github.com/Erebuz/3-api-validator/internal/domain"
)

// Имена API-методов.
const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

// RequestContext наблюдаемость одного запроса: идентификатор
// и, в зависимости от метода, список переданных полей или число клиентов.
type RequestContext struct {
	RequestID string
	Has       []string
	NClients  int
}

// HandleMethod диспетчер методов API.
//
// Возвращает значение ответа и код. Два коротких замыкания: провал
// аутентификации (Forbidden, дальше ничего не выполняется) и неизвестный
// метод (Invalid Request). Пустой текст ошибки означает каноничный
// текст кода — его подставляет транспортный слой.
func (s *Service) HandleMethod(ctx context.Context, rctx *RequestContext, body map[string]any) (any, int) {
	if len(body) == 0 {
		return "", domain.StatusInvalidRequest
	}

	req := &domain.MethodRequest{}

	var errs []string
	for _, field := range req.Fields() {
		if err := field.Assign(argValue(body, field.Name)); err != nil {
			errs = append(errs, fieldMessage(err))
		}
	}
	if len(errs) > 0 {
		return strings.Join(errs, ", "), domain.StatusInvalidRequest
	}

	if !s.CheckAuth(req) {
		s.Log.Warn("authentication failed",
			"request_id", rctx.RequestID,
			"login", req.LoginString(),
		)
		return "", domain.StatusForbidden
	}

	switch req.MethodString() {
	case MethodOnlineScore:
		return s.handleOnlineScore(ctx, rctx, req)
	case MethodClientsInterests:
		return s.handleClientsInterests(ctx, rctx, req)
	}

	s.Log.Warn("unknown method",
		"request_id", rctx.RequestID,
		"method", req.MethodString(),
	)
	return "", domain.StatusInvalidRequest
}

func (s *Service) handleOnlineScore(ctx context.Context, rctx *RequestContext, req *domain.MethodRequest) (any, int) {
	args, errs, has := ValidateOnlineScore(req.ArgumentsMap())
	rctx.Has = has

	if errs != nil {
		return strings.Join(errs, ", "), domain.StatusInvalidRequest
	}

	if req.IsAdmin() {
		return map[string]any{"score": AdminScore}, domain.StatusOK
	}

	return map[string]any{"score": s.GetScore(ctx, args)}, domain.StatusOK
}

func (s *Service) handleClientsInterests(ctx context.Context, rctx *RequestContext, req *domain.MethodRequest) (any, int) {
	args, errs, nclients := ValidateClientsInterests(req.ArgumentsMap())
	rctx.NClients = nclients

	if errs != nil {
		return strings.Join(errs, ", "), domain.StatusInvalidRequest
	}

	// Либо полный ответ по всем клиентам, либо Internal Error без частичных результатов
	response := make(map[string]any)
	for _, clientID := range args.ClientIDList() {
		interests, err := s.GetInterests(ctx, clientID)
		if err != nil {
			s.Log.Error("interests lookup failed",
				"request_id", rctx.RequestID,
				"client_id", clientID,
				"error", err,
			)
			return "", domain.StatusInternalError
		}
		response[strconv.FormatInt(clientID, 10)] = interests
	}

	return response, domain.StatusOK
}
