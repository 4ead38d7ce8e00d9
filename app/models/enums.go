package models

import (
	"database/sql/driver"
	"fmt"
)

// Condition is the physical state of the stocked units.
type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionOpenBox Condition = "OPEN_BOX"
	ConditionUsed    Condition = "USED"
)

// ParseCondition accepts exactly the enum names.
func ParseCondition(s string) (Condition, error) {
	switch c := Condition(s); c {
	case ConditionNew, ConditionOpenBox, ConditionUsed:
		return c, nil
	}
	return "", NewDataValidationError("Invalid condition: '%s' is not one of NEW, OPEN_BOX, USED", s)
}

func (c Condition) Valid() bool {
	_, err := ParseCondition(string(c))
	return err == nil
}

func (c Condition) String() string { return string(c) }

func (c Condition) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid condition %q", string(c))
	}
	return string(c), nil
}

func (c *Condition) Scan(src interface{}) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	parsed, err := ParseCondition(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RestockLevel is a coarse classification of how well stocked a row is.
type RestockLevel string

const (
	RestockEmpty    RestockLevel = "EMPTY"
	RestockLow      RestockLevel = "LOW"
	RestockModerate RestockLevel = "MODERATE"
	RestockPlenty   RestockLevel = "PLENTY"
)

func ParseRestockLevel(s string) (RestockLevel, error) {
	switch r := RestockLevel(s); r {
	case RestockEmpty, RestockLow, RestockModerate, RestockPlenty:
		return r, nil
	}
	return "", NewDataValidationError("Invalid restock_level: '%s' is not one of EMPTY, LOW, MODERATE, PLENTY", s)
}

func (r RestockLevel) Valid() bool {
	_, err := ParseRestockLevel(string(r))
	return err == nil
}

func (r RestockLevel) String() string { return string(r) }

func (r RestockLevel) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid restock_level %q", string(r))
	}
	return string(r), nil
}

func (r *RestockLevel) Scan(src interface{}) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	parsed, err := ParseRestockLevel(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func scanString(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into enum", src)
	}
}
