package models

import "encoding/json"

// User is one registration record. The named fields are the ones the service
// knows about; anything else the client submitted is carried in Extra and
// serialized at the top level of the JSON object, so unrecognized form fields
// survive a store round trip.
type User struct {
	ID            string  `json:"id"`
	Country       string  `json:"country"`
	City          string  `json:"city"`
	Course        string  `json:"course"`
	Proficiency   string  `json:"proficiency"`
	FullName      string  `json:"fullName"`
	FatherName    string  `json:"fatherName"`
	Email         string  `json:"email"`
	CNIC          string  `json:"cnic"`
	Phone         string  `json:"phone"`
	DOB           string  `json:"dob"`
	Gender        string  `json:"gender"`
	Qualification string  `json:"qualification"`
	HasLaptop     string  `json:"hasLaptop"`
	FatherNic     *string `json:"fatherNic"`
	ImageURL      string  `json:"imageUrl"`
	ImagePublicID string  `json:"imagePublicId"`
	CreatedAt     string  `json:"createdAt"`

	Extra map[string]string `json:"-" bson:"extra,omitempty"`
}

// knownUserKeys are the JSON keys owned by named User fields. Extra never
// shadows one of these.
var knownUserKeys = map[string]bool{
	"id":            true,
	"country":       true,
	"city":          true,
	"course":        true,
	"proficiency":   true,
	"fullName":      true,
	"fatherName":    true,
	"email":         true,
	"cnic":          true,
	"phone":         true,
	"dob":           true,
	"gender":        true,
	"qualification": true,
	"hasLaptop":     true,
	"fatherNic":     true,
	"imageUrl":      true,
	"imagePublicId": true,
	"createdAt":     true,
}

func (u User) MarshalJSON() ([]byte, error) {
	type fixed User // drops the custom marshaler
	raw, err := json.Marshal(fixed(u))
	if err != nil {
		return nil, err
	}
	if len(u.Extra) == 0 {
		return raw, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	for key, value := range u.Extra {
		if knownUserKeys[key] {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		obj[key] = encoded
	}
	return json.Marshal(obj)
}

func (u *User) UnmarshalJSON(data []byte) error {
	type fixed User
	var f fixed
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*u = User(f)
	u.Extra = nil
	for key, value := range obj {
		if knownUserKeys[key] {
			continue
		}
		if u.Extra == nil {
			u.Extra = make(map[string]string)
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			// Non-string extras keep their raw JSON text.
			s = string(value)
		}
		u.Extra[key] = s
	}
	return nil
}
