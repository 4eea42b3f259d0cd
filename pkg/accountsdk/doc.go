/*
Package accountsdk provides a client SDK for the accounts service.

# Overview

The SDK wraps the small HTTP surface of the accounts service: account
registration, login, the authenticated profile endpoint, key discovery, and
health probes. It also defines the wire types the server itself uses to shape
responses, so client and server can never drift apart.

Create a client and register an account:

	client := accountsdk.NewClient("https://accounts.example.com")

	created, err := client.SignUp(ctx, accountsdk.SignUpRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	})

Log in and call an authenticated endpoint:

	login, err := client.Login(ctx, "ada@example.com", "s3cret")
	me, err := client.Me(ctx, login.Token)

# Errors

Failed requests return *APIError carrying the HTTP status and the server's
message. Sign-up validation failures return *ValidationError with the
per-field rule violations.
*/
package accountsdk
