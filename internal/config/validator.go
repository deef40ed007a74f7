package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	buildwireerrors "github.com/alexisbeaulieu97/buildwire/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	capabilityPattern    = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	configurationPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
	modulePattern        = regexp.MustCompile(`^[A-Za-z0-9._-]+:[A-Za-z0-9._-]+:[A-Za-z0-9._+-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			_, err := semver.NewVersion(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("capability_id", func(fl validator.FieldLevel) bool {
			return capabilityPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("configuration_name", func(fl validator.FieldLevel) bool {
			return configurationPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("module_id", func(fl validator.FieldLevel) bool {
			return modulePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateManifest performs schema and cross-field validation on the manifest.
func ValidateManifest(m *Manifest) error {
	if m == nil {
		return buildwireerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(m); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(m.Configurations))
	for i, spec := range m.Configurations {
		if _, exists := seen[spec.Name]; exists {
			field := fmt.Sprintf("configurations[%d].name", i)
			return buildwireerrors.NewValidationError(field, fmt.Sprintf("duplicate configuration %q", spec.Name), nil)
		}
		seen[spec.Name] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); !ok {
		return buildwireerrors.NewValidationError("manifest", err.Error(), err)
	}

	first := verrs[0]
	field := strings.TrimPrefix(first.Namespace(), "Manifest.")
	message := fmt.Sprintf("failed '%s' validation", first.Tag())
	if first.Param() != "" {
		message = fmt.Sprintf("failed '%s=%s' validation", first.Tag(), first.Param())
	}
	return buildwireerrors.NewValidationError(field, message, err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}
