package errs

// Sentinels shared by the command and query sides. Failures are attached at
// the call site with Mark so the underlying cause survives.
var (
	// Hotel
	ErrHotelNotFound    = New("hotel not found")
	ErrCategoryNotFound = New("category not found")

	// Room
	ErrRoomNotFound      = New("room not found")
	ErrRoomAlreadyExists = New("room already exists")
	ErrRoomOutOfService  = New("room out of service")

	// Customer
	ErrCustomerNotFound      = New("customer not found")
	ErrCustomerAlreadyExists = New("customer already exists")

	// Reservation
	ErrReservationNotFound = New("reservation not found")
	ErrDateNotCompatible   = New("reservation dates not compatible")
	ErrDuplicateRequest    = New("reservation already exists for idempotency key")
	ErrRequestInProgress   = New("reservation request in progress")

	// Provisioning
	ErrProviderError       = New("payment provider error")
	ErrPartialProvisioning = New("payment provisioning partially failed")
	ErrProvisioningFailed  = New("payment provisioning failed")
	ErrProvisioningBusy    = New("payment provisioning already running")

	// Generic
	ErrDeleteFailed     = New("delete failed")
	ErrInvalidQuery     = New("invalid query")
	ErrDomainValidation = New("domain validation error")
	ErrDatabaseFailure  = New("database operation failed")
)
