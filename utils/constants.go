package utils

// Application constants
const (
	// Application name fallback
	AppName = "Epsalae"

	// API version of the upstream backend
	APIVersion = "v1"

	// Default server port
	DefaultPort = "8080"

	// Default local storage file
	DefaultStoragePath = "epsalae.db"

	// Flat shipping fee in rupees
	ShippingFee = 100.0

	// Orders at or above this subtotal ship free
	FreeShippingThreshold = 5000.0

	// Flat handling fee added for cash-on-delivery orders
	CODHandlingFee = 50.0

	// Maximum file size for image uploads (5MB)
	MaxImageSize = 5 * 1024 * 1024

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Maximum quantity of a single item in the cart
	MaxCartQuantity = 10
)

// Payment methods accepted at checkout
const (
	PaymentCOD    = "cod"
	PaymentEsewa  = "esewa"
	PaymentKhalti = "khalti"
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrSessionExpired     = "Session expired, please login again"
	ErrUnauthorized       = "Unauthorized access"
	ErrInvalidImage       = "Invalid image. Provide an http(s) URL or a base64 data URI"
	ErrImageTooLarge      = "Image size exceeds 5MB limit"
	ErrCartEmpty          = "Your cart is empty"
	ErrCouponInvalid      = "Invalid or expired coupon code"
	ErrOrderNotFound      = "Order not found"
	ErrUpstreamFailure    = "Something went wrong, please try again"
)

// Success messages
const (
	MsgLoginSuccess    = "Login successful"
	MsgLogoutSuccess   = "Logout successful"
	MsgAddedToCart     = "Added to cart"
	MsgRemovedFromCart = "Removed from cart"
	MsgCartCleared     = "Cart cleared"
	MsgOrderPlaced     = "Order placed successfully"
	MsgCreateSuccess   = "Created successfully"
	MsgUpdateSuccess   = "Updated successfully"
	MsgDeleteSuccess   = "Deleted successfully"
)
