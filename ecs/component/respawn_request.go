package component

// RespawnRequest is a marker placed on the hero by hazards. RespawnSystem
// moves the hero back to its start position after movement has run.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()

// RecenterRequest asks the CameraSystem to snap onto the carrier's hit box
// instead of following its velocity.
type RecenterRequest struct{}

var RecenterRequestComponent = NewComponent[RecenterRequest]()
