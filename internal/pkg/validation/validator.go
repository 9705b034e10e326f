package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// состояние заказа: заглавные буквы и подчеркивания, как их пишет демон
var orderStatePattern = regexp.MustCompile(`^[A-Z][A-Z_]*$`)

// New возвращает валидатор, который называет поля по json-тегам
// и знает тег order_state.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// ошибка регистрации возможна только при пустом имени тега
	_ = v.RegisterValidation("order_state", validateOrderState)

	return v
}

func validateOrderState(fl validatorv10.FieldLevel) bool {
	state := fl.Field().String()
	return orderStatePattern.MatchString(state) && state != "UNKNOWN"
}

// Fields раскладывает ошибку валидации по полям. Для прочих ошибок
// возвращает nil.
func Fields(err error) map[string]string {
	var validationErrors validatorv10.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fieldPath(fe.Namespace())] = describe(fe)
	}
	return fields
}

// fieldPath убирает имя корневой структуры: OrderActionRequest.params.memo -> params.memo
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "order_state":
		return "must be an order state such as ESCROW_LOCKED"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
