package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"math"
	"strconv"
)

// Count is a nullable integer column. An invalid Count is a cell the source
// data left empty (JSON null or "None").
type Count struct {
	Int64 int64
	Valid bool
}

// Int returns a valid Count.
func Int(v int64) Count { return Count{Int64: v, Valid: true} }

// Float returns the value as a float sample, NaN when missing.
func (c Count) Float() float64 {
	if !c.Valid {
		return math.NaN()
	}
	return float64(c.Int64)
}

// Equal reports whether c holds v.
func (c Count) Equal(v int64) bool { return c.Valid && c.Int64 == v }

func (c Count) String() string {
	if !c.Valid {
		return "NaN"
	}
	return strconv.FormatInt(c.Int64, 10)
}

// Scan implements sql.Scanner.
func (c *Count) Scan(src any) error {
	var n sql.NullInt64
	if err := n.Scan(src); err != nil {
		return err
	}
	c.Int64, c.Valid = n.Int64, n.Valid
	return nil
}

// Value implements driver.Valuer.
func (c Count) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.Int64, nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(c.Int64, 10)), nil
}

func (c *Count) UnmarshalJSON(data []byte) error {
	var v *int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*c = Count{}
		return nil
	}
	*c = Int(*v)
	return nil
}

func (c Count) MarshalYAML() (interface{}, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.Int64, nil
}
