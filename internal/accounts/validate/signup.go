package validate

// SignUpRequest is the sign-up payload with its declared rules. The
// confirmPassword field exists only to confirm the password and is never
// persisted.
type SignUpRequest struct {
	FirstName       string `json:"firstName" validate:"required,alpha"`
	LastName        string `json:"lastName" validate:"required,alpha"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4,eqfield=ConfirmPassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"-"`
}

// Validate checks the payload against its declared rules.
func (r SignUpRequest) Validate() FieldErrors {
	return Struct(r)
}
