package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDeliverer(t *testing.T) {
	s := Empty()

	s = s.AddDeliverer("Carlos")
	s = s.AddDeliverer("Pedro")

	assert.Equal(t, []string{"Carlos", "Pedro"}, s.Deliverers)
}

func TestAddDeliverer_DuplicateIsNoOp(t *testing.T) {
	s := Empty().AddDeliverer("Carlos")

	s = s.AddDeliverer("Carlos")

	assert.Equal(t, []string{"Carlos"}, s.Deliverers)
}

func TestAddDeliverer_CaseVariantsAreDistinct(t *testing.T) {
	s := Empty().AddDeliverer("Carlos")

	s = s.AddDeliverer("carlos")
	s = s.AddDeliverer("Carlos ")

	assert.Equal(t, []string{"Carlos", "carlos", "Carlos "}, s.Deliverers)
}

func TestAddDeliverer_EmptyIsNoOp(t *testing.T) {
	s := Empty().AddDeliverer("")
	assert.Empty(t, s.Deliverers)
}

func TestRemoveDeliverer(t *testing.T) {
	s := Empty().AddDeliverer("Carlos").AddDeliverer("Pedro")

	s = s.RemoveDeliverer("Carlos")
	assert.Equal(t, []string{"Pedro"}, s.Deliverers)

	s = s.RemoveDeliverer("missing")
	assert.Equal(t, []string{"Pedro"}, s.Deliverers)
}
