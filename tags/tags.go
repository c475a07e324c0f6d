package tags

import "github.com/yohamta/donburi"

var (
	Ball     = donburi.NewTag().SetName("Ball")
	Platform = donburi.NewTag().SetName("Platform")
)
