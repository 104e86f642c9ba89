package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Literal bodies of the account API. Clients compare them verbatim, including
// the different capitalisation of the two "does not exist" answers.
const (
	msgBackendAPI         = "Backend API"
	msgAccountCreated     = "Account Created"
	msgAccountExists      = "Account Already Exists"
	msgAccountUpdated     = "Account Updated"
	msgUpdateNotFound     = "Account Does NOT Exist"
	msgAccountDeleted     = "Account Deleted"
	msgDeleteNotFound     = "Account Does Not Exist"
	msgLookupNotFound     = "Account Does Not Exist"
	msgInvalidRequest     = "Invalid request"
	msgUnexpectedFailure  = "Request failed"
	errUsernameQueryParam = "username query parameter is required"
)

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}
