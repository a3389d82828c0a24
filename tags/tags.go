package tags

import "github.com/yohamta/donburi"

var (
	Snowflake  = donburi.NewTag().SetName("Snowflake")
	Light      = donburi.NewTag().SetName("Light")
	Ornament   = donburi.NewTag().SetName("Ornament")
	Background = donburi.NewTag().SetName("Background")
	Message    = donburi.NewTag().SetName("Message")
	Tree       = donburi.NewTag().SetName("Tree")
)

// Resolv tags for the tree's spatial region
const (
	ResolvTree = "tree"
)
