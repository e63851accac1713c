package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against its struct-level rules.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				return fmt.Errorf("field %s: failed %s validation", fe.Namespace(), fe.Tag())
			}
		}
		return err
	}
	return nil
}
