package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TreeData holds the tree's clickable bounding rectangle. The region spans
// the tree width centered on the canvas and the tree height above the base.
type TreeData struct {
	Region *resolv.Object
}

var Tree = donburi.NewComponentType[TreeData]()
