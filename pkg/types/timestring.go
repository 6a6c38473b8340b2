package types

import (
	"errors"
	"fmt"
	"time"
)

// timeStringFormat формат метки времени HH:MM (24 часа, с ведущим нулём)
const timeStringFormat = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString метка времени вида "HH:MM" (например, "09:00")
// Благодаря ведущим нулям лексикографическое сравнение строк
// совпадает с хронологическим порядком внутри одних суток
type TimeString string

// NewTimeString создаёт метку времени из time.Time (часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString создаёт метку времени из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeStringFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление метки
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если метка не задана
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата метки
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore возвращает true, если метка строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если метка строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает метку, сдвинутую на minutes минут вперёд
// Сдвиг за полночь заворачивается в пределах суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeStringFormat)), nil
}
