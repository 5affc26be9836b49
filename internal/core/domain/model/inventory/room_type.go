package inventory

import (
	"fmt"

	"moving/internal/pkg/errs"
)

// RoomType classifies the home size an inventory describes.
type RoomType int

const (
	// RoomTypeUnknown represents an invalid or undefined room type.
	RoomTypeUnknown RoomType = iota

	// Bedsitter is a single-room unit.
	Bedsitter

	// Studio is a studio apartment.
	Studio

	// OneBedroom is a one-bedroom apartment.
	OneBedroom

	// TwoBedroom is a two-bedroom apartment.
	TwoBedroom
)

func getRoomTypeStrings() map[RoomType]string {
	return map[RoomType]string{
		Bedsitter:  "bedsitter",
		Studio:     "studio",
		OneBedroom: "1br",
		TwoBedroom: "2br",
	}
}

// RoomTypeFromString parses a boundary-supplied room type value.
func RoomTypeFromString(s string) (RoomType, error) {
	for roomType, str := range getRoomTypeStrings() {
		if str == s {
			return roomType, nil
		}
	}
	return RoomTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"room type", fmt.Errorf("%q is not a valid room type", s))
}

// Validate checks that the RoomType value is one of the known types.
func (r RoomType) Validate() error {
	if _, ok := getRoomTypeStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"room type", fmt.Errorf("%d is not a valid room type", r))
	}
	return nil
}

// String returns the lowercase wire representation of the room type.
func (r RoomType) String() string {
	if str, ok := getRoomTypeStrings()[r]; ok {
		return str
	}
	return "unknown"
}
