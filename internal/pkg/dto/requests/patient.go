package requests

type CreatePatient struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=30"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Address   string `json:"address" validate:"omitempty,max=200"`
	Notes     string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdatePatient replaces only the fields present in the payload.
type UpdatePatient struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Address   *string `json:"address" validate:"omitempty,max=200"`
	Notes     *string `json:"notes" validate:"omitempty,max=2000"`
}
