package utils

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/sitepress/sitepress-backend/models"
)

func ValidateUuid(uuidParam string) error {
	if _, err := uuid.Parse(uuidParam); err != nil {
		return errors.Wrapf(models.BadParameterError, "'%s' is not a valid UUID", uuidParam)
	}
	return nil
}
