package onboarding

import "github.com/orioninvest/brokerage/pkg/docstore"

// Form carries the personal-information fields collected after sign-up.
// The seven tagged fields are required; the rest are optional or defaulted.
type Form struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Zip          string `json:"zip" validate:"required"`
	PhoneType    string `json:"phone_type"`
	Location     string `json:"location"`
	PhoneNumber  string `json:"phone_number" validate:"required"`

	MailingAddress bool `json:"mailingAddress"`
	BirthOutsideUS bool `json:"birthOutsideUS"`
}

// NewForm returns an empty form with the defaulted selections.
func NewForm() Form {
	return Form{
		PhoneType: "Mobile",
		Location:  "United States",
	}
}

// fields flattens the form into the document merge payload. An empty
// address line 2 is stored as null, matching what the dashboard expects.
func (f Form) fields() docstore.Document {
	var line2 any
	if f.AddressLine2 != "" {
		line2 = f.AddressLine2
	}
	return docstore.Document{
		"first_name":     f.FirstName,
		"last_name":      f.LastName,
		"address_line1":  f.AddressLine1,
		"address_line2":  line2,
		"city":           f.City,
		"state":          f.State,
		"zip":            f.Zip,
		"phone_type":     f.PhoneType,
		"location":       f.Location,
		"phone_number":   f.PhoneNumber,
		"mailingAddress": f.MailingAddress,
		"birthOutsideUS": f.BirthOutsideUS,
	}
}
