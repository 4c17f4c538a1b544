// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package validate checks raw command line input before it reaches the
// generator or the policy evaluator. Everything it returns as an error is a
// *ValidationError.
package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/toeirei/pwgator/internal/passgen"
	"github.com/toeirei/pwgator/internal/policy"
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// GenerateInput is the raw input of the word command.
type GenerateInput struct {
	Length           int    `validate:"min=4,max=300"`
	Characters       string `validate:"classtags"`
	Count            int    `validate:"min=1"`
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
	FirstLetter      bool
}

// CheckInput is the raw input of the check command.
type CheckInput struct {
	Minimum   int `validate:"min=0"`
	Uppercase bool
	Lowercase bool
	Number    bool
	Symbol    bool
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// An empty tag string is accepted; it produces an empty alphabet which
	// the generator reports on its own.
	_ = val.RegisterValidation("classtags", func(fl validator.FieldLevel) bool {
		_, err := passgen.ParseClasses(fl.Field().String())
		return err == nil
	})
	return val
}

// Generate validates in and converts it into a generation request.
func Generate(in GenerateInput) (passgen.Request, error) {
	if err := v.Struct(in); err != nil {
		return passgen.Request{}, translate(err)
	}
	classes, err := passgen.ParseClasses(in.Characters)
	if err != nil {
		return passgen.Request{}, &ValidationError{Field: "characters", Value: in.Characters, Reason: err.Error()}
	}
	return passgen.Request{
		Length:  in.Length,
		Classes: classes,
		Exclusions: passgen.Exclusions{
			Similar:   in.ExcludeSimilar,
			Ambiguous: in.ExcludeAmbiguous,
		},
		ForceFirstLetter: in.FirstLetter,
		Count:            in.Count,
	}, nil
}

// Check validates in and converts it into a policy check set.
func Check(in CheckInput) (policy.CheckSet, error) {
	if err := v.Struct(in); err != nil {
		return policy.CheckSet{}, translate(err)
	}
	return policy.CheckSet{
		MinimumLength: in.Minimum,
		RequireUpper:  in.Uppercase,
		RequireLower:  in.Lowercase,
		RequireDigit:  in.Number,
		RequireSymbol: in.Symbol,
	}, nil
}

// Language checks that lang is one of the available locales, given as tag to
// display name.
func Language(lang string, available map[string]string) error {
	tags := make([]string, 0, len(available))
	for tag := range available {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	if err := v.Var(lang, "required,oneof="+strings.Join(tags, " ")); err == nil {
		return nil
	}
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = fmt.Sprintf("%s (%s)", tag, available[tag])
	}
	return &ValidationError{Field: "language", Value: lang, Reason: "expected one of " + strings.Join(names, ", ")}
}

// translate turns the first validator field error into a ValidationError.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	ve := &ValidationError{Field: field, Value: fe.Value()}
	switch {
	case fe.StructField() == "Length":
		ve.Reason = fmt.Sprintf("expected %d-%d", passgen.MinLength, passgen.MaxLength)
	case fe.Tag() == "classtags":
		ve.Field = "characters"
		ve.Reason = describeBadTag(fe.Value())
	case fe.Tag() == "min":
		ve.Reason = "must be at least " + fe.Param()
	default:
		ve.Reason = fe.Tag()
	}
	return ve
}

func describeBadTag(value any) string {
	s, _ := value.(string)
	if _, err := passgen.ParseClasses(s); err != nil {
		return err.Error()
	}
	return "expected a combination of s, n, l, u"
}
