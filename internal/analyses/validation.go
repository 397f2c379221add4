package analyses

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		vld = v
	})
	return vld
}

type analyzeRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,notblank"`
	ResumeText     string `json:"resumeText" validate:"required,notblank"`
}

// fieldIssue describes one invalid request field.
type fieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// validationIssues lists failing fields by their JSON name.
func validationIssues(err error) []fieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]fieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldIssue{Field: jsonFieldName(fe.Field()), Issue: "required"})
	}
	return out
}

func jsonFieldName(structField string) string {
	switch structField {
	case "JobDescription":
		return "jobDescription"
	case "ResumeText":
		return "resumeText"
	default:
		return structField
	}
}
