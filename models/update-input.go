package models

import "encoding/json"

// OptionalString tracks whether a JSON field was present at all and,
// when present, whether it carried a value or an explicit null. The
// update endpoint needs the distinction: null clears a column while an
// absent key leaves it untouched.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		o.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// UpdateSubmissionInput is the PATCH body. Every field is optional and
// independently nullable.
type UpdateSubmissionInput struct {
	Status      OptionalString `json:"status"`
	Response    OptionalString `json:"response"`
	ResponseURL OptionalString `json:"responseUrl"`
}

// HasStatus reports whether the body carried a usable status value. An
// empty or null status counts as "not supplied" and is ignored; the
// admin form always posts the select's current value, so an empty
// status never represents intent.
func (u UpdateSubmissionInput) HasStatus() bool {
	return u.Status.Set && u.Status.Valid && u.Status.Value != ""
}

// Apply writes the supplied fields onto s. Response and ResponseURL go
// by key presence: an explicit null clears the column and an empty
// string is stored as-is.
func (u UpdateSubmissionInput) Apply(s *Submission) {
	if u.HasStatus() {
		s.Status = u.Status.Value
	}
	if u.Response.Set {
		s.Response = u.Response.ptr()
	}
	if u.ResponseURL.Set {
		s.ResponseURL = u.ResponseURL.ptr()
	}
}

func (o OptionalString) ptr() *string {
	if !o.Valid {
		return nil
	}
	value := o.Value
	return &value
}
