package rbac

// Role names. Keep these stable; they are part of the token contract.
const (
	RoleAdmin    = "admin"
	RoleNotifier = "notifier"     // both channels
	RoleSMS      = "sms_sender"   // text only
	RoleVoice    = "voice_caller" // calls only
)

func IsAdmin(role string) bool { return role == RoleAdmin }

// IsKnown reports whether role is one this service issues tokens for.
func IsKnown(role string) bool {
	switch role {
	case RoleAdmin, RoleNotifier, RoleSMS, RoleVoice:
		return true
	default:
		return false
	}
}
