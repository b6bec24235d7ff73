package cognito

import "context"

// Client is the set of Cognito user-pool operations the auth service needs.
type Client interface {
	SignUp(ctx context.Context, input SignUpInput) (SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, input ConfirmSignUpInput) error
	ResendConfirmationCode(ctx context.Context, input ResendCodeInput) error
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	RefreshTokens(ctx context.Context, input RefreshInput) (AuthOutput, error)
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ConfirmForgotPassword(ctx context.Context, input ConfirmForgotPasswordInput) error
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	GlobalSignOut(ctx context.Context, input GlobalSignOutInput) error
}

// SignUpInput contains the parameters for registering a new user.
type SignUpInput struct {
	Email    string
	Password string
}

// SignUpOutput contains the result of a successful registration.
type SignUpOutput struct {
	UserSub      string
	Confirmed    bool
	CodeDelivery string // delivery medium for the confirmation code, e.g. "EMAIL"
}

// ConfirmSignUpInput contains the parameters for confirming a registration.
type ConfirmSignUpInput struct {
	Email string
	Code  string
}

// ResendCodeInput contains the parameters for resending a confirmation code.
type ResendCodeInput struct {
	Email string
}

// LoginInput contains the credentials for the USER_PASSWORD_AUTH flow.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput contains the tokens issued after successful authentication.
type AuthOutput struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int32
	TokenType    string
}

// RefreshInput contains the parameters for the REFRESH_TOKEN_AUTH flow.
type RefreshInput struct {
	Email        string
	RefreshToken string
}

// ForgotPasswordInput contains the parameters for starting a password reset.
type ForgotPasswordInput struct {
	Email string
}

// ConfirmForgotPasswordInput contains the parameters for completing a password reset.
type ConfirmForgotPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// ChangePasswordInput contains the parameters for changing a password
// while authenticated.
type ChangePasswordInput struct {
	AccessToken      string
	PreviousPassword string
	NewPassword      string
}

// GlobalSignOutInput contains the parameters for revoking all of a
// user's tokens.
type GlobalSignOutInput struct {
	AccessToken string
}
