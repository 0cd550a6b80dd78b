package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// DiscountType represents how a bulk pricing tier is applied
type DiscountType string

const (
	DiscountTypePrice   DiscountType = "Price"
	DiscountTypePercent DiscountType = "Percent"
)

func (t DiscountType) String() string {
	if t == "" {
		return string(DiscountTypePrice)
	}
	return string(t)
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch strings.ToLower(str) {
	case "percent", "%":
		*t = DiscountTypePercent
	default:
		*t = DiscountTypePrice
	}
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = DiscountTypePrice
	case string:
		*t = DiscountType(v)
	case []byte:
		*t = DiscountType(string(v))
	}
	return nil
}
