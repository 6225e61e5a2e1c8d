package dto

import (
	"encoding/json"
	"fmt"

	"github.com/sitepress/sitepress-backend/models"
)

// StringList decodes either a JSON array of strings or the comma separated string
// sent by the admin forms.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = models.NormalizeStringList(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = models.SplitCommaList(s)
		return nil
	}

	return fmt.Errorf("expected an array of strings or a comma separated string")
}
