package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how a document-level discount is applied
type DiscountType int

const (
	DiscountTypePercentage DiscountType = 0
	DiscountTypeFixed      DiscountType = 1
)

func (d DiscountType) String() string {
	names := [...]string{"percentage", "fixed"}
	if int(d) < 0 || int(d) >= len(names) {
		return "percentage"
	}
	return names[d]
}

func (d DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = DiscountType(i)
		return nil
	}
	switch str {
	case "percentage":
		*d = DiscountTypePercentage
	case "fixed":
		*d = DiscountTypeFixed
	}
	return nil
}

func (d DiscountType) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*d = DiscountTypePercentage
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = DiscountType(v)
	case int:
		*d = DiscountType(v)
	}
	return nil
}
