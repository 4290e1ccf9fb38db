package responses

type Login struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type Register struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
