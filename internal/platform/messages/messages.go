// Package messages holds the user-facing strings placed in response envelopes.
package messages

const (
	RecordCreated   = "Record created successfully."
	RecordUpdated   = "Record updated successfully."
	RecordDeleted   = "Record deleted successfully."
	RecordRetrieved = "Record retrieved successfully."
	LoginSuccess    = "Login successful."
	LogoutSuccess   = "Logout successful."
	TokenRefreshed  = "Token refreshed successfully."
)

const (
	NotFound              = "Record not found."
	SomethingWentWrong    = "Something went wrong. Please try again later."
	EmailAlreadyExists    = "Email already registered."
	InvalidCredentials    = "Invalid email or password."
	InvalidToken          = "Invalid or expired token."
	UserNotFound          = "User not found."
	LogoutFailed          = "Logout failed."
	AuthHeaderInvalid     = "Authorization header missing or invalid."
	ServerMisconfigured   = "Server configuration error: missing GROQ_API_KEY."
	AnswerGenerationError = "We're having trouble generating an answer. Please try again."
	MethodNotAllowed      = "Method not allowed."
	RouteNotFound         = "Not found."
)

// NoInformation is returned in place of an empty model completion.
const NoInformation = "The document does not contain that information."

// NonFieldErrorKey is the results key for errors not tied to an input field.
const NonFieldErrorKey = "detail"
