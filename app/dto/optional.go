package dto

import "encoding/json"

// OptUint distinguishes an absent JSON field from an explicit null, so
// updates can clear a reference instead of only replacing it.
type OptUint struct {
	Set   bool
	Value *uint
}

func (o *OptUint) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// OptString is OptUint for string fields.
type OptString struct {
	Set   bool
	Value *string
}

func (o *OptString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
