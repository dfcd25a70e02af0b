package util

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"exusiai.dev/beatmap/internal/model"
	"exusiai.dev/beatmap/internal/pkg/flog"
)

var (
	// from https://github.com/go-playground/validator/blob/9e2ea4038020b5c7e3802a21cfa4e3afcfdcd276/regexes.go
	semverRegexString = `^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$` // numbered capture groups https://semver.org/
	semverRegex       = regexp.MustCompile(semverRegexString)
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)
	validate.RegisterValidation("semverprefixed", semverPrefixed)
	validate.RegisterValidation("beatmapfilename", beatmapFilename)

	return validate
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	candidates := strings.Split(strings.ToLower(fl.Param()), " ")
	for _, v := range candidates {
		if val == v {
			return true
		}
	}
	return false
}

func semverPrefixed(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	trimmed := strings.TrimPrefix(val, "v")
	return semverRegex.MatchString(trimmed)
}

func beatmapFilename(fl validator.FieldLevel) bool {
	return IsBeatmapFilename(fl.Field().String())
}

// IsBeatmapFilename accepts plain file names only: a difficulty must live directly in
// its project directory.
func IsBeatmapFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// Finding is a single Info lint result.
type Finding struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value any    `json:"value"`
}

// Lint checks info against its validation rules. Findings are logged as warnings and
// returned; they never prevent info from being used.
func Lint(ctx context.Context, validate *validator.Validate, info *model.BeatmapInfo) []Finding {
	err := validate.StructCtx(ctx, info)
	if err == nil {
		return []Finding{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		flog.ErrorFrom(ctx).
			Str("evt.name", "beatmap.lint.failed").
			Err(err).
			Msg("failed to lint info document")
		return []Finding{}
	}

	findings := make([]Finding, 0, len(verrs))
	for _, fe := range verrs {
		f := Finding{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Value: fe.Value(),
		}
		findings = append(findings, f)

		flog.WarnFrom(ctx).
			Str("evt.name", "beatmap.lint.finding").
			Str("field", f.Field).
			Str("rule", f.Rule).
			Interface("value", f.Value).
			Msg("info document does not follow the format rules")
	}

	return findings
}
