package service

// AuthSession is the authenticated user identity handed to services by the
// transport layer. Profile fields act as fallbacks for blank checkout form
// input; there is no ambient current-user state anywhere below the handlers.
type AuthSession struct {
	UserID   string
	FullName string
	Email    string
	Phone    string
}
