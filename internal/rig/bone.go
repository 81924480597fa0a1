package rig

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidHierarchy reports a malformed parent chain at construction time.
var ErrInvalidHierarchy = errors.New("rig: invalid hierarchy")

// Style controls how a bone appears in extracted geometry.
type Style uint8

const (
	// StyleLine bones render as a joint-to-endpoint segment.
	StyleLine Style = iota
	// StyleHidden bones are structural joints and never render.
	StyleHidden
	// StyleSolid bones render as solid geometry (the head sphere).
	StyleSolid
)

// Bone is one node of the hierarchy: a fixed bind offset from its parent
// joint plus a mutable local rotation written by the animator each frame.
type Bone struct {
	Parent     int        // index of the parent bone, -1 for the root
	BindOffset mgl32.Vec3 // translation from parent joint in the rest pose
	Rotation   mgl32.Vec3 // local XYZ Euler rotation in degrees
	Length     float32    // extent along the local -Y axis; 0 marks a pure joint
	Style      Style

	// World places the joint in world space. Recomputed by UpdateWorld,
	// never carried across evaluations.
	World mgl32.Mat4
}

// Skeleton is an ordered bone list where every parent index is strictly
// smaller than its child's index, so one forward sweep resolves all
// world transforms.
type Skeleton struct {
	Bones []Bone
}

// New validates the parent chain and returns a skeleton in bind pose.
// Bone 0 must be the single root; every other bone must reference a
// strictly earlier index. Violations fail with ErrInvalidHierarchy.
func New(bones []Bone) (*Skeleton, error) {
	if len(bones) == 0 {
		return nil, fmt.Errorf("%w: no bones", ErrInvalidHierarchy)
	}
	for i, b := range bones {
		if i == 0 {
			if b.Parent != -1 {
				return nil, fmt.Errorf("%w: bone 0 must be the root, has parent %d", ErrInvalidHierarchy, b.Parent)
			}
			continue
		}
		if b.Parent < 0 || b.Parent >= i {
			return nil, fmt.Errorf("%w: bone %d references parent %d", ErrInvalidHierarchy, i, b.Parent)
		}
	}

	s := &Skeleton{Bones: bones}
	for i := range s.Bones {
		s.Bones[i].World = mgl32.Ident4()
	}
	s.UpdateWorld()
	return s, nil
}

// UpdateWorld recomputes every bone's world transform in one
// parent-before-child sweep. Linear in bone count.
func (s *Skeleton) UpdateWorld() {
	for i := range s.Bones {
		b := &s.Bones[i]
		off := b.BindOffset
		local := mgl32.Translate3D(off.X(), off.Y(), off.Z()).Mul4(rotXYZ(b.Rotation))
		if b.Parent >= 0 {
			b.World = s.Bones[b.Parent].World.Mul4(local)
		} else {
			b.World = local
		}
	}
}

// rotXYZ builds the intrinsic XYZ rotation Rz·Ry·Rx from degrees.
func rotXYZ(deg mgl32.Vec3) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(deg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(deg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(deg.Z()))
	return rz.Mul4(ry).Mul4(rx)
}

// JointPos returns the bone origin in world space.
func (b *Bone) JointPos() mgl32.Vec3 {
	return b.World.Col(3).Vec3()
}

// EndpointPos returns the bone tip: Length units along the local down axis.
func (b *Bone) EndpointPos() mgl32.Vec3 {
	return b.World.Mul4x1(mgl32.Vec4{0, -b.Length, 0, 1}).Vec3()
}
