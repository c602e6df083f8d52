package auth

import "github.com/orioninvest/brokerage/pkg/identity"

// User-facing copy. The technical provider error is logged, never shown.
const (
	MsgAccountCreated = "Account Created Successfully!"
	MsgSignInSuccess  = "Sign-In Successful!"
	MsgSignedOut      = "You have successfully signed out."

	MsgPasswordTooShort = "Password must be at least 6 characters."
	MsgPasswordMismatch = "Passwords do not match."

	MsgEmailInUse   = "This email is already registered."
	MsgInvalidEmail = "Invalid email format."
	MsgWeakPassword = "Password is too weak."

	MsgUserNotFound    = "No account found with this email."
	MsgWrongPassword   = "Incorrect password. Please try again."
	MsgTooManyRequests = "Too many attempts. Please try again later."
	MsgBadCredentials  = "Invalid credentials. Please try again."

	MsgGeneric = "An error occurred. Please try again."
)

// classifySignUp maps a sign-up provider error to its user-facing message.
// Unrecognized codes surface the provider's own message.
func classifySignUp(err error) string {
	switch identity.CodeOf(err) {
	case identity.CodeEmailInUse:
		return MsgEmailInUse
	case identity.CodeInvalidEmail:
		return MsgInvalidEmail
	case identity.CodeWeakPassword:
		return MsgWeakPassword
	default:
		return err.Error()
	}
}

// classifySignIn maps a sign-in provider error to its user-facing message.
func classifySignIn(err error) string {
	switch identity.CodeOf(err) {
	case identity.CodeUserNotFound:
		return MsgUserNotFound
	case identity.CodeWrongPassword:
		return MsgWrongPassword
	case identity.CodeInvalidEmail:
		return MsgInvalidEmail
	case identity.CodeTooManyRequests:
		return MsgTooManyRequests
	default:
		return MsgBadCredentials
	}
}
