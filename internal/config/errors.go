package config

import "errors"

var (
	ErrInvalidAppConfigs     = errors.New("invalid app configs")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")
)
