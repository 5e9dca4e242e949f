package popupctl

// Type identifies a popup.
type Type int

const (
	None Type = iota
	Help
	Input
)

// Priority lists popups from the one that receives keys first.
var Priority = []Type{Help, Input}

// RenderOrder lists popups from bottom to top.
var RenderOrder = []Type{Input, Help}
