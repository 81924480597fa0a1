package rig

import "github.com/go-gl/mathgl/mgl32"

// Reference proportions for a ~1.8 m figure, Y up, world origin on the ground.
const (
	pelvisHeight  = 1.0
	spineLength   = 0.4
	neckGap       = 0.1
	headLength    = 0.22
	upperLeg      = 0.45
	lowerLeg      = 0.45
	footLength    = 0.18
	upperArm      = 0.30
	lowerArm      = 0.30
	handLength    = 0.12
	hipWidth      = 0.18
	shoulderWidth = 0.28
)

// Handles names every joint of the fixed human rig. They are resolved once
// at construction so no caller has to assume numeric bone slots.
type Handles struct {
	Root, Spine, Neck, Head   int
	HipL, KneeL, AnkleL       int
	HipR, KneeR, AnkleR       int
	ShoulderL, ElbowL, WristL int
	ShoulderR, ElbowR, WristR int
}

// Human couples the walking skeleton with its named joints.
type Human struct {
	Skel   *Skeleton
	Joints Handles
}

// NewHuman builds the fixed 16-bone stick figure: pelvis root, spine, neck,
// head, and three-joint limbs. The pelvis and neck are zero-length structural
// joints; the head renders as a solid sphere instead of a line. The rig is
// structurally immutable afterwards — only rotations change per frame.
func NewHuman() *Human {
	var (
		b builder
		j Handles
	)

	j.Root = b.add(-1, mgl32.Vec3{0, pelvisHeight, 0}, 0, StyleHidden)
	j.Spine = b.add(j.Root, mgl32.Vec3{}, spineLength, StyleLine)
	j.Neck = b.add(j.Spine, mgl32.Vec3{0, spineLength, 0}, 0, StyleHidden)
	j.Head = b.add(j.Neck, mgl32.Vec3{0, neckGap, 0}, headLength, StyleSolid)

	// Legs: left is +X, right is -X.
	j.HipL = b.add(j.Root, mgl32.Vec3{hipWidth / 2, 0, 0}, upperLeg, StyleLine)
	j.KneeL = b.add(j.HipL, mgl32.Vec3{0, -upperLeg, 0}, lowerLeg, StyleLine)
	j.AnkleL = b.add(j.KneeL, mgl32.Vec3{0, -lowerLeg, 0}, footLength, StyleLine)

	j.HipR = b.add(j.Root, mgl32.Vec3{-hipWidth / 2, 0, 0}, upperLeg, StyleLine)
	j.KneeR = b.add(j.HipR, mgl32.Vec3{0, -upperLeg, 0}, lowerLeg, StyleLine)
	j.AnkleR = b.add(j.KneeR, mgl32.Vec3{0, -lowerLeg, 0}, footLength, StyleLine)

	// Arms hang from the shoulder line at the top of the spine.
	j.ShoulderL = b.add(j.Spine, mgl32.Vec3{shoulderWidth / 2, spineLength, 0}, upperArm, StyleLine)
	j.ElbowL = b.add(j.ShoulderL, mgl32.Vec3{0, -upperArm, 0}, lowerArm, StyleLine)
	j.WristL = b.add(j.ElbowL, mgl32.Vec3{0, -lowerArm, 0}, handLength, StyleLine)

	j.ShoulderR = b.add(j.Spine, mgl32.Vec3{-shoulderWidth / 2, spineLength, 0}, upperArm, StyleLine)
	j.ElbowR = b.add(j.ShoulderR, mgl32.Vec3{0, -upperArm, 0}, lowerArm, StyleLine)
	j.WristR = b.add(j.ElbowR, mgl32.Vec3{0, -lowerArm, 0}, handLength, StyleLine)

	s, err := New(b.bones)
	if err != nil {
		// The fixed rig is built in topological order above.
		panic(err)
	}
	return &Human{Skel: s, Joints: j}
}

type builder struct {
	bones []Bone
}

func (b *builder) add(parent int, offset mgl32.Vec3, length float32, style Style) int {
	b.bones = append(b.bones, Bone{
		Parent:     parent,
		BindOffset: offset,
		Length:     length,
		Style:      style,
	})
	return len(b.bones) - 1
}
