package variant

import (
	"database/sql/driver"
	"errors"
)

// Size is the cup size of an order item.
type Size string

const (
	SizeS Size = "S"
	SizeM Size = "M"
	SizeL Size = "L"
)

// MilkType is the milk choice of an order item.
type MilkType string

const (
	MilkNone   MilkType = "none"
	MilkWhole  MilkType = "whole"
	MilkSkim   MilkType = "skim"
	MilkOat    MilkType = "oat"
	MilkSoy    MilkType = "soy"
	MilkAlmond MilkType = "almond"
)

// SugarLevel is one of four discrete sweetness buckets.
type SugarLevel string

const (
	SugarNone   SugarLevel = "none"
	SugarLess   SugarLevel = "less"
	SugarNormal SugarLevel = "normal"
	SugarExtra  SugarLevel = "extra"
)

var (
	ErrInvalidSize       = errors.New("invalid size")
	ErrInvalidMilkType   = errors.New("invalid milk type")
	ErrInvalidSugarLevel = errors.New("invalid sugar level")
)

func (s Size) String() string { return string(s) }

func (s Size) Value() (driver.Value, error) { return s.String(), nil }

// ParseSize parses a size value. The empty string defaults to M.
func ParseSize(s string) (Size, error) {
	switch s {
	case "":
		return SizeM, nil
	case SizeS.String():
		return SizeS, nil
	case SizeM.String():
		return SizeM, nil
	case SizeL.String():
		return SizeL, nil
	default:
		return "", ErrInvalidSize
	}
}

func (m MilkType) String() string { return string(m) }

func (m MilkType) Value() (driver.Value, error) { return m.String(), nil }

// ParseMilkType parses a milk type. The empty string defaults to none.
func ParseMilkType(s string) (MilkType, error) {
	switch s {
	case "":
		return MilkNone, nil
	case MilkNone.String():
		return MilkNone, nil
	case MilkWhole.String():
		return MilkWhole, nil
	case MilkSkim.String():
		return MilkSkim, nil
	case MilkOat.String():
		return MilkOat, nil
	case MilkSoy.String():
		return MilkSoy, nil
	case MilkAlmond.String():
		return MilkAlmond, nil
	default:
		return "", ErrInvalidMilkType
	}
}

func (l SugarLevel) String() string { return string(l) }

func (l SugarLevel) Value() (driver.Value, error) { return l.String(), nil }

// ParseSugarLevel parses a sugar level. The empty string defaults to normal.
func ParseSugarLevel(s string) (SugarLevel, error) {
	switch s {
	case "":
		return SugarNormal, nil
	case SugarNone.String():
		return SugarNone, nil
	case SugarLess.String():
		return SugarLess, nil
	case SugarNormal.String():
		return SugarNormal, nil
	case SugarExtra.String():
		return SugarExtra, nil
	default:
		return "", ErrInvalidSugarLevel
	}
}
