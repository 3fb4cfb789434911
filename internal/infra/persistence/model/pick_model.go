package model

import (
	"database/sql/driver"
	"encoding/json"

	"mylot/internal/domain/entity"

	"github.com/pkg/errors"
)

// PickList stores a nums array as a jsonb column.
// Writers sort the slice by descending rate before it reaches the database.
type PickList []entity.NumberPick

// Value implements driver.Valuer for jsonb storage.
func (p PickList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal picks")
	}

	return string(data), nil
}

// Scan implements sql.Scanner for jsonb retrieval.
func (p *PickList) Scan(src any) error {
	if src == nil {
		*p = nil

		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported picks column type %T", src)
	}

	return errors.Wrap(json.Unmarshal(data, p), "failed to unmarshal picks")
}

// GormDataType tells GORM the column type for schema generation.
func (PickList) GormDataType() string {
	return "jsonb"
}
