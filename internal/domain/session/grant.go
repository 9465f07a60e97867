package session

// Grant is what the parking API hands back after a login or a registration.
// User details are optional on the wire.
type Grant struct {
	Token     string
	Email     string
	Firstname string
	Role      string
}
