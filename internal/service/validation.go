package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field path such as "title", "evidence[0].title" or
// "suspects[1]" to the validation messages for that field.
type FieldErrors map[string][]string

// Add appends msg to the messages of field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// First returns the first message recorded for field, or "".
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// collection describes a list field for its length messages.
type collection struct {
	singular string
	plural   string
}

var collections = map[string]collection{
	"evidence": {singular: "piece of evidence", plural: "pieces of evidence"},
	"suspects": {singular: "suspect", plural: "suspects"},
	"victims":  {singular: "victim", plural: "victims"},
}

// labels name fields in messages. Keys use "[]" in place of list indexes.
var labels = map[string]string{
	"title":                  "Title",
	"description":            "Description",
	"solution":               "Solution",
	"difficulty":             "Difficulty",
	"evidence[].title":       "Evidence title",
	"evidence[].type":        "Evidence type",
	"evidence[].content":     "Evidence content",
	"evidence[].description": "Evidence description",
	"evidence[].fileName":    "File name",
	"evidence[].dataAiHint":  "AI hint",
	"suspects[]":             "Suspect",
	"victims[]":              "Victim",
	"caseId":                 "Case ID",
	"guess":                  "Your guess",
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// inputValidator checks use case inputs against their struct tags and turns
// failures into FieldErrors keyed by JSON field path.
type inputValidator struct {
	validate *validator.Validate
}

func newInputValidator() *inputValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &inputValidator{validate: v}
}

// Struct validates s. It returns nil when s is valid.
func (iv *inputValidator) Struct(s interface{}) FieldErrors {
	err := iv.validate.Struct(s)
	if err == nil {
		return nil
	}

	errs := FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("_", "Input could not be validated.")
		return errs
	}

	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		errs.Add(path, message(path, fe))
	}
	return errs
}

// fieldPath strips the struct name from a validator namespace,
// "CreateCaseInput.evidence[0].title" becomes "evidence[0].title".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(path string, fe validator.FieldError) string {
	key := indexPattern.ReplaceAllString(path, "[]")

	if c, ok := collections[key]; ok {
		return collectionMessage(c, fe)
	}

	label, ok := labels[key]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

func collectionMessage(c collection, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		if fe.Param() == "" || fe.Param() == "1" {
			return fmt.Sprintf("At least one %s is required.", c.singular)
		}
		return fmt.Sprintf("At least %s %s are required.", fe.Param(), c.plural)
	case "max":
		return fmt.Sprintf("No more than %s %s are allowed.", fe.Param(), c.plural)
	default:
		return fmt.Sprintf("The list of %s is invalid.", c.plural)
	}
}
