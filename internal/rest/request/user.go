package request

// Register is the account creation request body. Auth requests are
// strictly typed, only the forum content endpoints carry untyped fields.
type Register struct {
	Username string `json:"username" validate:"required,max=50,alphanum"`
	Fullname string `json:"fullname" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login is the credential verification request body.
type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
