package tags

import "github.com/yohamta/donburi"

var (
	Ring = donburi.NewTag().SetName("Ring")
)

// Resolv tags for pointer hit-testing
const (
	ResolvRing  = "ring"
	ResolvProbe = "probe"
)
