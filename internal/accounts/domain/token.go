package domain

import "time"

// IssuedToken is the result of a successful login: a signed bearer token and
// the user it was issued for.
type IssuedToken struct {
	Token     string
	ExpiresIn time.Duration
	User      User
}
