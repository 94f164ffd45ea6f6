package forms

// LoginInput is the sign-in form.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"min16=6"`
}

// SignupInput is the account creation form. The mismatch rule reports on confirmPassword.
type SignupInput struct {
	Username        string `json:"username" validate:"min16=3"`
	Password        string `json:"password" validate:"min16=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"min16=6,eqfield=Password"`
}

const msgPasswordMin = "Password must be at least 6 characters"

var loginMessages = messages{
	"username": {"required": "Username is required"},
	"password": {"min16": msgPasswordMin},
}

var signupMessages = messages{
	"username": {"min16": "Username must be at least 3 characters"},
	"password": {"min16": msgPasswordMin},
	"confirmPassword": {
		"min16":   "Confirm password is required",
		"eqfield": "Passwords don't match",
	},
}

// ValidateLogin returns the input unchanged when valid, or a *ValidationError.
func ValidateLogin(in LoginInput) (LoginInput, error) {
	if err := check(in, loginMessages); err != nil {
		return LoginInput{}, err
	}
	return in, nil
}

// ValidateSignup returns the input unchanged when valid, or a *ValidationError.
func ValidateSignup(in SignupInput) (SignupInput, error) {
	if err := check(in, signupMessages); err != nil {
		return SignupInput{}, err
	}
	return in, nil
}
