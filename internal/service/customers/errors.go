package customers

import "errors"

var (
	// ErrEmailTaken - клиент с таким email уже зарегистрирован
	ErrEmailTaken = errors.New("customers.service: email already registered")

	// ErrInvalidCredentials - неверный email или пароль.
	// Не различаем "нет такого email" и "неверный пароль"
	ErrInvalidCredentials = errors.New("customers.service: invalid credentials")

	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("customers.service: invalid input")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("customers.service: internal error")
)
