package domain

// PushPermission mirrors the host platform's three-state notification
// permission. Within a session the engine only ever moves it toward
// granted, and only through an explicit user-driven request.
type PushPermission string

const (
	PushDefault PushPermission = "default"
	PushGranted PushPermission = "granted"
	PushDenied  PushPermission = "denied"
)

// PermissionState is the engine's view of what the host allows. Both
// fields start at the most restrictive value.
type PermissionState struct {
	Push  PushPermission `json:"push"`
	Audio bool           `json:"audio"`
}
