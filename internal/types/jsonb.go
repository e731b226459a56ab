package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSONB-backed list of strings (pin codes, amenity ids, ...)
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}

	var result StringList
	err := json.Unmarshal(bytes, &result)
	*l = result
	return err
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(StringList{})
	}
	return json.Marshal(l)
}

// Coordinates is a [longitude, latitude] pair. When present it always holds
// exactly two elements.
type Coordinates []float64

func (c Coordinates) Validate() error {
	if len(c) != 2 {
		return fmt.Errorf("coordinates must be a [longitude, latitude] pair")
	}
	if c[0] < -180 || c[0] > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if c[1] < -90 || c[1] > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	return nil
}

func (c Coordinates) Longitude() float64 {
	return c[0]
}

func (c Coordinates) Latitude() float64 {
	return c[1]
}

func (c *Coordinates) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}

	var result Coordinates
	err := json.Unmarshal(bytes, &result)
	*c = result
	return err
}

func (c Coordinates) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}
