package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/alycrisco/Core/internal/core"
)

//go:embed schema.cue
var schemaCUE []byte

// ValidationError is a single invalid configuration key.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		fmt.Fprintf(&sb, "  %s: %s\n", err.Field, err.Message)
	}
	return sb.String()
}

// Validator checks raw configuration settings against the embedded CUE
// schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling config schema: %w", err)
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate checks settings, a decoded config document. Unknown keys are
// rejected. The platform key must also name a known platform.
func (v *Validator) Validate(settings map[string]any) error {
	var errs ValidationErrors

	value := v.schema.Unify(v.ctx.Encode(settings))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			format, args := e.Msg()
			errs = append(errs, ValidationError{
				Field:   fieldName(e.Path()),
				Message: fmt.Sprintf(format, args...),
			})
		}
	}

	if raw, ok := settings["platform"].(string); ok {
		if err := ValidatePlatform(raw); err != nil {
			errs = append(errs, ValidationError{Field: "platform", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidatePlatform checks that s parses as a platform from the catalog.
func ValidatePlatform(s string) error {
	p, err := core.ParsePlatform(s)
	if err != nil {
		return err
	}
	if !core.IsKnownPlatform(p.Name) {
		return fmt.Errorf("unknown platform %q (known: %s)", p.Name, strings.Join(core.KnownPlatforms, ", "))
	}
	return nil
}

func fieldName(path []string) string {
	if len(path) > 0 && path[0] == "#Config" {
		path = path[1:]
	}
	if len(path) == 0 {
		return "config"
	}
	return strings.Join(path, ".")
}
