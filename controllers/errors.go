package controllers

// CustomError adalah error domain dengan pesan yang aman ditampilkan
// ke caller.
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrUserNotFound      = &CustomError{"user not found"}
	ErrInvalidOTP        = &CustomError{"invalid OTP"}
	ErrOTPExpired        = &CustomError{"OTP has expired"}
	ErrItemUnavailable   = &CustomError{"menu item not found or not available"}
	ErrCartItemNotFound  = &CustomError{"cart item not found"}
	ErrTableNotFound     = &CustomError{"table not found"}
	ErrTableUnavailable  = &CustomError{"table is not available"}
	ErrAlreadyInSession  = &CustomError{"you already have an active session at another table"}
	ErrNoActiveSession   = &CustomError{"no active table session found"}
	ErrSessionMismatch   = &CustomError{"invalid table session for this order"}
	ErrEmptyCart         = &CustomError{"cart is empty"}
	ErrOrderNotFound     = &CustomError{"order not found"}
	ErrOrderItemNotFound = &CustomError{"order item not found"}
	ErrInvalidStatus     = &CustomError{"invalid status value"}
	ErrNoPermission      = &CustomError{"you do not have permission"}
)
