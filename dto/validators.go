package dto

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sitepress/sitepress-backend/models"
)

// RegisterValidators adds the custom binding tags and makes validation errors
// report json field names.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(fieldNameFromTag)
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return models.IsValidSlug(strings.TrimSpace(fl.Field().String()))
	})
}

func fieldNameFromTag(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}
