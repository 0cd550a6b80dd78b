package enum

import (
	"encoding/json"
	"fmt"
)

// TrackingType selects which audit trail an inventory tracking query reads
type TrackingType string

const (
	TrackingTypeSales    TrackingType = "Sales"
	TrackingTypeQuantity TrackingType = "Quantity"
	TrackingTypePrice    TrackingType = "Price"
)

func (t TrackingType) String() string {
	return string(t)
}

func (t TrackingType) IsValid() bool {
	switch t {
	case TrackingTypeSales, TrackingTypeQuantity, TrackingTypePrice:
		return true
	}
	return false
}

func (t TrackingType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *TrackingType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = TrackingType(str)
	return nil
}

// ParseTrackingType returns an error listing the allowed values for anything unknown.
func ParseTrackingType(s string) (TrackingType, error) {
	t := TrackingType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tracking type %q, allowed: Sales, Quantity, Price", s)
	}
	return t, nil
}
