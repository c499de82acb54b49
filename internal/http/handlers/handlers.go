// handlers содержит HTTP-хендлеры social-сервиса.
// Хендлер разбирает запрос (путь, query, строгий JSON + validator), вызывает
// service.Service и пишет JSON-ответ; ошибки — через apierrors.WriteError.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pribylovaa/go-social-feed/internal/config"
	apierrors "github.com/pribylovaa/go-social-feed/internal/errors"
	"github.com/pribylovaa/go-social-feed/internal/http/middleware"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/service"
)

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	svc      *service.Service
	limits   config.LimitsConfig
	validate *validator.Validate
}

func New(svc *service.Service, limits config.LimitsConfig) *Handlers {
	return &Handlers{
		svc:      svc,
		limits:   limits,
		validate: newValidator(),
	}
}

// newValidator настраивает validator: имена полей в ошибках берутся из json-тегов,
// notblank отвергает строки из одних пробелов.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return v
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер (неизвестные поля запрещены) + проверка тегов validate.
func (h *Handlers) decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return apierrors.BadRequest("invalid request body")
	}

	if err := h.validate.Struct(value); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apierrors.BadRequest(validationMessage(verrs[0]))
		}

		return apierrors.BadRequest("invalid request body")
	}

	return nil
}

// validationMessage превращает первую ошибку validator в короткое сообщение по JSON-имени поля.
func validationMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "gt":
		return field + " must be positive"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "notblank":
		return field + " must not be blank"
	default:
		return field + " is invalid"
	}
}

// pathID читает положительный int64 из параметра маршрута name.
func pathID(r *http.Request, name string) (int64, error) {
	v := chi.URLParam(r, name)

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierrors.BadRequest("invalid " + name)
	}

	return id, nil
}

// callerID — id аутентифицированного пользователя (маршрут под RequireUser).
func callerID(r *http.Request) int64 {
	id, _ := middleware.UserID(r.Context())
	return id
}

// optionalCallerID — id пользователя или nil для анонимного запроса.
func optionalCallerID(r *http.Request) *int64 {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		return nil
	}
	return &id
}

// pageParams разбирает ?page=N&limit=M (page с 1) в offset/limit.
// Отсутствующий limit — серверный default, слишком большой — обрезается до Max.
func (h *Handlers) pageParams(r *http.Request) (models.PageParams, int32, error) {
	page, limit := int64(1), int64(h.limits.Default)

	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 1 {
			return models.PageParams{}, 0, apierrors.BadRequest("invalid page")
		}
		page = n
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 1 {
			return models.PageParams{}, 0, apierrors.BadRequest("invalid limit")
		}
		limit = n
	}

	if limit > int64(h.limits.Max) {
		limit = int64(h.limits.Max)
	}

	offset := (page - 1) * limit
	if offset > int64(^uint32(0)>>1) {
		return models.PageParams{}, 0, apierrors.BadRequest("invalid page")
	}

	return models.PageParams{Offset: int32(offset), Limit: int32(limit)}, int32(page), nil
}
