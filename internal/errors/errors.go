// errors стандартизирует ответы об ошибках HTTP-слоя social-сервиса.
// На вход принимает ошибку сервисного слоя (или локальную ошибку разбора запроса),
// на выход даёт:
//   - корректный HTTP-статус;
//   - короткий стабильный code для фронта;
//   - безопасное message без утечки деталей хранилища.
//
// Маппинг строится только через errors.Is по категориям service.Err*,
// текст ошибок не анализируется.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-social-feed/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// ErrUnauthenticated — запрос без валидного access-токена там, где он обязателен.
var ErrUnauthenticated = stderrors.New("unauthenticated")

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// badRequest — ошибка разбора/валидации запроса на транспортном уровне.
// Сообщение безопасно для клиента; категория — service.ErrInvalidArgument.
type badRequest struct {
	msg string
}

func (e *badRequest) Error() string { return e.msg }
func (e *badRequest) Unwrap() error { return service.ErrInvalidArgument }

// BadRequest возвращает ошибку категории InvalidArgument с публичным сообщением msg.
func BadRequest(msg string) error {
	return &badRequest{msg: msg}
}

// publicErrors — конкретные сервисные ошибки, чей текст можно показать клиенту.
var publicErrors = []error{
	service.ErrEmptyContent,
	service.ErrNoValidFields,
	service.ErrParentMismatch,
	service.ErrNestingUnsupported,
	service.ErrInvalidEmail,
	service.ErrPostNotFound,
	service.ErrCommentNotFound,
	service.ErrParentNotFound,
	service.ErrUserNotFound,
	service.ErrNotLiked,
	service.ErrNotFollowing,
	service.ErrMediaNotFound,
	service.ErrCommentsDisabled,
	service.ErrSelfFollow,
	service.ErrAlreadyLiked,
	service.ErrAlreadyFollowing,
	service.ErrEmailTaken,
	service.ErrMediaDisabled,
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - отмена клиентом -> 499, истёкший дедлайн -> 504;
//   - ErrNotFoundOrUnauthorized -> 404 с обобщённым сообщением
//     (не раскрываем, существует ли чужая сущность);
//   - прочие категории: NotFound -> 404, Forbidden -> 403, Conflict -> 409,
//     InvalidArgument -> 400, Unavailable -> 503;
//   - всё остальное -> 500/internal без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := classify(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

func classify(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case stderrors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "authentication required"
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case stderrors.Is(err, service.ErrNotFoundOrUnauthorized):
		return http.StatusNotFound, "not_found_or_unauthorized", "not found or unauthorized"
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", publicMessage(err, "not found")
	case stderrors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "forbidden", publicMessage(err, "forbidden")
	case stderrors.Is(err, service.ErrConflict):
		return http.StatusConflict, "conflict", publicMessage(err, "conflict")
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", publicMessage(err, "invalid argument")
	case stderrors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable", publicMessage(err, "service unavailable")
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

// publicMessage возвращает текст самой конкретной известной ошибки в цепочке err,
// иначе fallback. Обёртки с op (пути кода) наружу не попадают.
func publicMessage(err error, fallback string) string {
	var br *badRequest
	if stderrors.As(err, &br) {
		return br.msg
	}

	for _, pe := range publicErrors {
		if stderrors.Is(err, pe) {
			return pe.Error()
		}
	}

	return fallback
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
