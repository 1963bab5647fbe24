package domain

import (
	"errors"
	"fmt"
)

// ErrBoneCountMismatch is returned when a pose does not match the bone count bound to the node.
var ErrBoneCountMismatch = errors.New("bone count mismatch")

// ErrNoSource is returned when a blend node is built without both pose sources.
var ErrNoSource = errors.New("pose source is required")

// ErrCharacterNotFound is returned when a character ID is not managed.
var ErrCharacterNotFound = errors.New("character not found")

// ErrCharacterExists is returned when a character ID is registered twice.
var ErrCharacterExists = errors.New("character already exists")

// ErrUnknownSourceType is returned when a source definition names an unsupported type.
var ErrUnknownSourceType = errors.New("unknown source type")

// ErrInvalidScenario is returned when a scenario file fails validation.
var ErrInvalidScenario = errors.New("invalid scenario")

// BoneCountError reports which pose broke the fixed bone count.
type BoneCountError struct {
	Where string
	Want  int
	Got   int
}

func (e *BoneCountError) Error() string {
	return fmt.Sprintf("%s: expected %d bones, got %d", e.Where, e.Want, e.Got)
}

// Is lets errors.Is match ErrBoneCountMismatch.
func (e *BoneCountError) Is(target error) bool {
	return target == ErrBoneCountMismatch
}

// CheckBoneCount returns a *BoneCountError if the pose length differs from want.
func CheckBoneCount(where string, want int, p Pose) error {
	if len(p) != want {
		return &BoneCountError{Where: where, Want: want, Got: len(p)}
	}
	return nil
}
