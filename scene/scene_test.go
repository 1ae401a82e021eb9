package scene

import (
	"testing"

	"hanami/anim"
	"hanami/math"
	"hanami/tree"
)

func TestNewInstallationEndToEnd(t *testing.T) {
	inst, err := NewInstallation(Params{
		Tree:       tree.Params{Depth: 2, BranchLength: 10, Seed: 11},
		PhotoCount: 100,
		Aspect:     16.0 / 9.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inst.Tree.Wood.Count() == 0 || inst.Tree.Blossom.Count() == 0 {
		t.Error("expected wood and blossom particles")
	}
	if len(inst.Tree.Leaves) == 0 {
		t.Fatal("expected at least one leaf")
	}
	// More requested photos than leaves: every leaf gets one.
	if got := len(inst.Gallery.Photos); got != len(inst.Tree.Leaves) {
		t.Errorf("expected %d photos, got %d", len(inst.Tree.Leaves), got)
	}
	if inst.FrameMesh == nil || len(inst.FrameMesh.Vertices) == 0 {
		t.Error("expected a frame mesh")
	}
	if inst.Quad == nil || len(inst.Quad.Vertices) != 4 {
		t.Error("expected the picture quad")
	}

	// A few frames of the full per-frame path.
	snap := anim.Snapshot{Expansion: 0.3, Polar: 1.2, Time: 1}
	for i := 0; i < 10; i++ {
		inst.Update(snap, 1.0/60.0)
	}
	if inst.Camera.Position == (math.Vec3{}) {
		t.Error("expected camera placed after update")
	}
}

func TestNewInstallationPhotoCount(t *testing.T) {
	inst, err := NewInstallation(Params{
		Tree:       tree.Params{Depth: 2, BranchLength: 10, Seed: 11},
		PhotoCount: 3,
		Aspect:     1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(inst.Gallery.Photos); got != 3 {
		t.Errorf("expected 3 photo entities, got %d", got)
	}
}

func TestNewInstallationRejectsBadParams(t *testing.T) {
	_, err := NewInstallation(Params{
		Tree:   tree.Params{Depth: -1, BranchLength: 10},
		Aspect: 1,
	})
	if err == nil {
		t.Error("expected validation error for negative depth")
	}
}

func TestTreeFocusOnTrunkLine(t *testing.T) {
	inst, err := NewInstallation(Params{
		Tree:   tree.Params{Depth: 2, BranchLength: 10, Seed: 5},
		Aspect: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	target := inst.Camera.Target
	if target.X != 0 || target.Z != 0 {
		t.Errorf("expected focus on the trunk line, got %+v", target)
	}
	if target.Y <= 0 {
		t.Errorf("expected focus above the base, got %v", target.Y)
	}
}
