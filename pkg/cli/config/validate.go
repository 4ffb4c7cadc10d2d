package config

import (
	"errors"
	"slices"

	"github.com/disgoorg/snowflake/v2"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/i18n"
)

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Discord IDs are snowflakes
	if err := v.RegisterValidation("snowflake", func(fl validator.FieldLevel) bool {
		id, err := snowflake.Parse(fl.Field().String())
		return err == nil && id != 0
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		return slices.Contains(i18n.SupportedLocales(), fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

func validateStruct(name string, s any) error {
	err := configValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return goerr.Wrap(err, "invalid configuration",
			goerr.V("config", name),
			goerr.V("field", first.Field()),
			goerr.V("rule", first.Tag()),
			goerr.V("param", first.Param()))
	}
	return goerr.Wrap(err, "invalid configuration", goerr.V("config", name))
}
