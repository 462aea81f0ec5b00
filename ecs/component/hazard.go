package component

// Hazard marks an obstacle that kills the hero on overlap.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()
