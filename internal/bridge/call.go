package bridge

// Methods served on the database channel.
const (
	MethodGetFavorites    = "getFavorites"
	MethodGetUserProfile  = "getUserProfile"
	MethodSaveUserProfile = "saveUserProfile"
)

// ErrorCodeDB is the error code for every store failure.
const ErrorCodeDB = "DB_ERROR"

// DefaultAppID is the application id used when none is configured.
const DefaultAppID = "com.example.app_navegacion_offline"

// ChannelName returns the database channel name for appID.
func ChannelName(appID string) string {
	return appID + "/db"
}

// MethodCall is a named invocation with an optional argument bag.
type MethodCall struct {
	Method    string
	Arguments map[string]any
}

// StringArgument returns the argument under key when it is present and holds
// a string.
func (c MethodCall) StringArgument(key string) (string, bool) {
	v, ok := c.Arguments[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// optionalString returns a pointer to the string argument under key, or nil
// when it is missing or not a string.
func (c MethodCall) optionalString(key string) *string {
	s, ok := c.StringArgument(key)
	if !ok {
		return nil
	}
	return &s
}
