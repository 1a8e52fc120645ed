package catalog

import "errors"

var (
	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
