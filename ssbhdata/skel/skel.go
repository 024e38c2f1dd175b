// Package skel holds the skeleton family.
package skel

import (
	"fmt"

	"ssbh-bindings/ssbhdata/codec"
)

// SkelData is the root of a skeleton file.
type SkelData struct {
	MajorVersion uint16     `json:"major_version"`
	MinorVersion uint16     `json:"minor_version"`
	Bones        []BoneData `json:"bones"`
}

// BoneData is one bone of the hierarchy. Transform is relative to the parent bone,
// ParentIndex indexes Bones and is nil for root bones.
type BoneData struct {
	Name          string        `json:"name"`
	Transform     [4][4]float32 `json:"transform"`
	ParentIndex   *uint64       `json:"parent_index"`
	BillboardType BillboardType `json:"billboard_type"`
}

//go:generate go tool stringer -type=BillboardType -output=billboard_string.go

// BillboardType selects how a bone faces the camera.
type BillboardType uint32

const (
	Disabled               BillboardType = 0
	XAxisViewPointAligned  BillboardType = 1
	YAxisViewPointAligned  BillboardType = 2
	Unk3                   BillboardType = 3
	XYAxisViewPointAligned BillboardType = 4
	YAxisViewPlaneAligned  BillboardType = 6
	XYAxisViewPlaneAligned BillboardType = 8
)

// BillboardTypes lists the variants in declaration order.
var BillboardTypes = []BillboardType{
	Disabled,
	XAxisViewPointAligned,
	YAxisViewPointAligned,
	Unk3,
	XYAxisViewPointAligned,
	YAxisViewPlaneAligned,
	XYAxisViewPlaneAligned,
}

func (b BillboardType) IsValid() bool {
	for _, v := range BillboardTypes {
		if v == b {
			return true
		}
	}

	return false
}

func (b BillboardType) MarshalText() ([]byte, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("invalid billboard type %d", uint32(b))
	}

	return []byte(b.String()), nil
}

func (b *BillboardType) UnmarshalText(text []byte) error {
	for _, v := range BillboardTypes {
		if v.String() == string(text) {
			*b = v
			return nil
		}
	}

	return fmt.Errorf("invalid billboard type %q", text)
}

// FromFile reads a skeleton in the interchange format.
func FromFile(path string) (SkelData, error) {
	var out SkelData
	if err := codec.ReadFile(path, &out); err != nil {
		return SkelData{}, err
	}

	return out, nil
}

// WriteToFile writes the skeleton in the interchange format.
func (s SkelData) WriteToFile(path string) error {
	return codec.WriteFile(path, s)
}
