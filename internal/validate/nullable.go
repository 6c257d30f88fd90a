package validate

import "encoding/json"

// NullableString distinguishes the three states a JSON string field can be
// in: absent (Set false), explicitly null (Set true, Valid false), and
// present (Set true, Valid true). PATCH payloads need the distinction —
// absent leaves a column untouched while null clears it.
type NullableString struct {
	Set   bool
	Valid bool
	Value string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
