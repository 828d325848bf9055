package marionette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionResolves(t *testing.T) {
	s, ids := buildTree(t)
	sel := s.Select(ids["c"])
	assert.True(t, sel.Valid())
	assert.Equal(t, ids["c"], sel.ID())
	assert.Equal(t, "c", sel.Joint().Name)
}

func TestSelectionInvalidID(t *testing.T) {
	s, _ := buildTree(t)
	sel := s.Select(99)
	assert.False(t, sel.Valid())
	assert.Equal(t, NoJoint, sel.ID())
	assert.Nil(t, sel.Joint())

	var zero Selection
	assert.False(t, zero.Valid())
	assert.False(t, zero.Next().Valid())
}

func TestSelectionInvalidatedByRebuild(t *testing.T) {
	s, ids := buildTree(t)
	sel := s.Select(ids["a"])
	s.Rebuild("root", NewJointPose())
	s.MustAddJoint("a", s.Root(), NewJointPose())

	assert.False(t, sel.Valid(), "selection from an earlier generation must not resolve")
	assert.Nil(t, sel.Joint())
	assert.Equal(t, s.Root(), sel.Next().ID())
}

func TestSelectionNextWraps(t *testing.T) {
	s, _ := buildTree(t)
	sel := s.Select(s.Root())
	var names []string
	for i, n := 0, s.Len()+1; i < n; i++ {
		names = append(names, sel.Joint().Name)
		sel = sel.Next()
	}
	assert.Equal(t, []string{"root", "a", "b", "c", "d", "root"}, names)
}
