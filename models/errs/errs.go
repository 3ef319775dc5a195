package errs

import (
	"github.com/pkg/errors"
)

// Терминальные ошибки движков. Контроллеры сопоставляют их
// с HTTP статусами через errors.Is, движки их не логируют и не повторяют.
var (
	ErrNotFound         = errors.New("запись не найдена")
	ErrForbidden        = errors.New("операция недоступна")
	ErrAlreadyProcessed = errors.New("согласование уже обработано")
	ErrValidation       = errors.New("некорректные данные запроса")
)

// Ошибки проверки назначения исполнителя.
// Для вызывающей стороны это разновидность ErrForbidden.
var (
	ErrOutOfScope        = errors.Wrap(ErrForbidden, "исполнитель вне доступного отдела")
	ErrRoleNotAssignable = errors.Wrap(ErrForbidden, "роль исполнителя недоступна для назначения")
)

func NotFoundf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func Forbiddenf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrForbidden, format, args...)
}

func Validationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}
