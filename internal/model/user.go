package model

import "time"

// User is the local record for a Cognito-authenticated user,
// keyed by the Cognito sub claim.
type User struct {
	ID         string    `json:"id"`
	CognitoSub string    `json:"cognito_sub"`
	Email      string    `json:"email"`
	Nickname   string    `json:"nickname"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
