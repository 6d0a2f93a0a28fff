// Package validate implements the required-field contract applied before
// every create, and the column filtering applied before every partial update.
package validate

import (
	"fmt"

	"github.com/hackateen/mural/internal/apperror"
)

// present reports whether a decoded JSON value counts as supplied.
// Empty strings, zero numbers, false and null are all treated as missing,
// matching the truthiness semantics the API has always had.
func present(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	default:
		return true
	}
}

// Required checks the payload against the entity's required-field list.
// When every required field is absent it reports the all-fields message;
// otherwise it names the first missing field in the declared order.
func Required(payload map[string]interface{}, fields []string) error {
	missing := 0

	for _, field := range fields {
		if !present(payload[field]) {
			missing++
		}
	}

	if missing == len(fields) {
		return apperror.ValidationFailed("", "Todos os campos obrigatorios devem ser preenchidos")
	}

	for _, field := range fields {
		if !present(payload[field]) {
			return apperror.ValidationFailed(field,
				fmt.Sprintf("O atributo '%s' não foi encontrado, porém é obrigatório", field))
		}
	}

	return nil
}

// Mutable keeps only the payload keys that name a persisted column,
// remapping them to their column names. Unknown keys are silently dropped.
func Mutable(payload map[string]interface{}, columns map[string]string) map[string]interface{} {
	updates := make(map[string]interface{})

	for key, value := range payload {
		if column, ok := columns[key]; ok {
			updates[column] = value
		}
	}

	return updates
}
