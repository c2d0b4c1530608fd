package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxSource selects which court rectangle a hitbox mirrors.
type HitboxSource int

const (
	SourceNear HitboxSource = iota
	SourceFar
	SourceBall
)

type ObjectData struct {
	*resolv.Object
	Source HitboxSource
}

var Object = donburi.NewComponentType[ObjectData]()
