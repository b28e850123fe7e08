package base

// StatusCode is the code returned to the OS.
type StatusCode uint8

// Status codes returned by the main executable.
const (
	SNoError StatusCode = iota
	SGenericError
	SHelpRequested
	SInvalidParameters
	SInitializationError
	SApplicationError
	SCacheError
	SUserError
	SCancelled
)
