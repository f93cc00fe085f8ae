package entity

import "errors"

var (
	// ErrNotFound неизвестное изображение или отсутствующий артефакт
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput некорректные данные для классификации
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreLoad отчёт не удалось загрузить целиком
	ErrStoreLoad = errors.New("store load failure")
)
