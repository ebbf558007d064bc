package contextkeys

type contextKey string

const (
	UsernameKey contextKey = "Username"
)
