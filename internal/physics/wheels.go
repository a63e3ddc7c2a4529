package physics

import "parking-sim/internal/common"

// WheelInset is the distance from the body side to a tire's contact point.
const WheelInset = 6.0

// WheelPoints returns the tire contact points in world space, ordered
// front-left, front-right, rear-right, rear-left. Axles sit wheelbase/2
// ahead of and behind the body center.
func WheelPoints(pose Pose, p Params) [4]common.Vec2 {
	x := p.Width/2 - WheelInset
	y := p.Wheelbase / 2
	local := [4]common.Vec2{
		{X: -x, Y: -y},
		{X: x, Y: -y},
		{X: x, Y: y},
		{X: -x, Y: y},
	}

	var out [4]common.Vec2
	center := pose.Center()
	for i, w := range local {
		out[i] = w.Rotate(pose.Heading).Add(center)
	}
	return out
}
