package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Error:   "Invalid request format",
		Details: "request body could not be parsed",
	}

	ErrInvalidCredentials = ErrorResponse{
		Error: "Invalid credentials",
	}

	ErrUnauthorized = ErrorResponse{
		Error: "Unauthorized",
	}

	ErrForbidden = ErrorResponse{
		Error: "Forbidden",
	}

	ErrInternal = ErrorResponse{
		Error: "Internal server error",
	}
)
