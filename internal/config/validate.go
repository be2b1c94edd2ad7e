package config

import (
	"errors"
	"strconv"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidCacheKind indicates an unrecognized cache kind.
	ErrInvalidCacheKind = errors.New("cache kind must be map, tinylfu or off")

	// ErrInvalidCacheSize indicates a non-positive tinylfu cache size.
	ErrInvalidCacheSize = errors.New("cache size must be > 0")

	// ErrInvalidNaming indicates a malformed naming setting.
	ErrInvalidNaming = errors.New("invalid naming setting")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.Cache.Kind {
	case CacheMap, CacheTinyLFU, CacheOff:
	default:
		errs = append(errs, &FieldError{
			Field: "cache.kind",
			Value: cfg.Cache.Kind,
			Err:   ErrInvalidCacheKind,
		})
	}
	if cfg.Cache.Kind == CacheTinyLFU && cfg.Cache.Size <= 0 {
		errs = append(errs, &FieldError{
			Field: "cache.size",
			Value: strconv.Itoa(cfg.Cache.Size),
			Err:   ErrInvalidCacheSize,
		})
	}

	if cfg.Naming.Step <= 0 {
		errs = append(errs, &FieldError{
			Field: "naming.step",
			Value: strconv.Itoa(cfg.Naming.Step),
			Err:   ErrInvalidNaming,
		})
	}
	if cfg.Naming.Limit <= 0 {
		errs = append(errs, &FieldError{
			Field: "naming.limit",
			Value: strconv.Itoa(cfg.Naming.Limit),
			Err:   ErrInvalidNaming,
		})
	}
	if cfg.Naming.Start < 0 {
		errs = append(errs, &FieldError{
			Field: "naming.start",
			Value: strconv.Itoa(cfg.Naming.Start),
			Err:   ErrInvalidNaming,
		})
	}

	return errs
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
