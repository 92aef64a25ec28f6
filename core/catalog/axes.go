package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Weight is the boldness axis of a font face, an ordinal value in [1, 1000].
// The named constants are convenience labels over the same integer space;
// matching compares plain numeric distance.
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightRegular    Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

var weightNames = map[string]Weight{
	"thin":       WeightThin,
	"extralight": WeightExtraLight,
	"ultralight": WeightExtraLight,
	"light":      WeightLight,
	"regular":    WeightRegular,
	"normal":     WeightRegular,
	"medium":     WeightMedium,
	"semibold":   WeightSemiBold,
	"demibold":   WeightSemiBold,
	"bold":       WeightBold,
	"extrabold":  WeightExtraBold,
	"ultrabold":  WeightExtraBold,
	"black":      WeightBlack,
	"heavy":      WeightBlack,
}

// ParseWeight accepts either a numeric weight ("700") or a conventional
// weight label ("bold", case-insensitive).
func ParseWeight(s string) (Weight, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 1000 {
			return 0, fmt.Errorf("font weight %d outside range [1, 1000]: %w", n, ErrInvalidArgument)
		}
		return Weight(n), nil
	}
	if w, ok := weightNames[strings.ToLower(s)]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("%q is not a font weight: %w", s, ErrInvalidArgument)
}

// Style is the slant axis. The zero value is reserved as the "unspecified"
// sentinel for match queries; variants always carry one of the three named
// styles.
type Style uint8

const (
	styleUnset Style = iota
	StyleNormal
	StyleItalic
	StyleOblique
)

// styleFallback fixes, per requested style, the order in which style groups
// are considered by the matching engine. Position 0 is the exact match.
var styleFallback = map[Style][3]Style{
	StyleNormal:  {StyleNormal, StyleOblique, StyleItalic},
	StyleItalic:  {StyleItalic, StyleOblique, StyleNormal},
	StyleOblique: {StyleOblique, StyleItalic, StyleNormal},
}

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	case StyleOblique:
		return "Oblique"
	}
	return "Unknown"
}

// ParseStyle accepts the three style names, case-insensitively.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "normal":
		return StyleNormal, nil
	case "italic":
		return StyleItalic, nil
	case "oblique":
		return StyleOblique, nil
	}
	return styleUnset, fmt.Errorf("%q is not a font style: %w", s, ErrInvalidArgument)
}

// MarshalText implements encoding.TextMarshaler so styles serialize as their
// names in JSON snapshots.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Stretch is the horizontal proportion axis, an ordinal value in [1, 9]
// running from ultra-condensed to ultra-expanded. It is optional: queries
// that leave it at zero use the weight/style matching path only.
type Stretch int

const (
	StretchUltraCondensed Stretch = 1
	StretchExtraCondensed Stretch = 2
	StretchCondensed      Stretch = 3
	StretchSemiCondensed  Stretch = 4
	StretchNormal         Stretch = 5
	StretchSemiExpanded   Stretch = 6
	StretchExpanded       Stretch = 7
	StretchExtraExpanded  Stretch = 8
	StretchUltraExpanded  Stretch = 9
)

// ParseStretch accepts a numeric stretch class in [1, 9].
func ParseStretch(s string) (Stretch, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 9 {
		return 0, fmt.Errorf("%q is not a stretch class in [1, 9]: %w", s, ErrInvalidArgument)
	}
	return Stretch(n), nil
}
