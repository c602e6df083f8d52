package onboarding

// SubmitRequest mirrors the form fields without validation tags: required
// fields are the workflow's responsibility so an incomplete submission
// exercises the same failure path on every surface.
type SubmitRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	AddressLine1   string `json:"address_line1"`
	AddressLine2   string `json:"address_line2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	PhoneType      string `json:"phone_type"`
	Location       string `json:"location"`
	PhoneNumber    string `json:"phone_number"`
	MailingAddress bool   `json:"mailingAddress"`
	BirthOutsideUS bool   `json:"birthOutsideUS"`
}
