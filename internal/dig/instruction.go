package dig

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is one of the four cardinal dig directions. The grid's y axis
// grows downward, so Up decreases y and Down increases it.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection maps a plan-file direction letter (U/D/L/R, any case) to a
// Direction.
func ParseDirection(c byte) (Direction, error) {
	switch c {
	case 'U', 'u':
		return Up, nil
	case 'D', 'd':
		return Down, nil
	case 'L', 'l':
		return Left, nil
	case 'R', 'r':
		return Right, nil
	default:
		return "", fmt.Errorf("unknown direction %q", string(c))
	}
}

// Color is a 24-bit RGB triple carried by each trench segment.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorFromUint32 unpacks the low 24 bits of v as 0xRRGGBB.
func ColorFromUint32(v uint32) Color {
	return Color{
		R: uint8((v & 0x00FF0000) >> 16),
		G: uint8((v & 0x0000FF00) >> 8),
		B: uint8(v & 0x000000FF),
	}
}

// ParseColor decodes a "#rrggbb" hex triple. The leading '#' is required.
func ParseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q missing '#' prefix", s)
	}
	hex := s[1:]
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q is not a 6-digit hex triple", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q is not valid hex: %w", s, err)
	}
	return ColorFromUint32(uint32(v)), nil
}

// Instruction is a single decoded dig order: walk length cells in
// direction, painting the trench with color.
type Instruction struct {
	Direction Direction
	Length    int
	Color     Color
}

// ParseInstruction decodes one plan line of the form "R 6 (#70c710)".
// Length must be a positive integer; anything malformed is rejected here so
// the geometry core never sees invalid instructions.
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Instruction{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	if len(fields[0]) != 1 {
		return Instruction{}, fmt.Errorf("direction %q is not a single letter", fields[0])
	}
	direction, err := ParseDirection(fields[0][0])
	if err != nil {
		return Instruction{}, err
	}

	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return Instruction{}, fmt.Errorf("length %q is not an integer: %w", fields[1], err)
	}
	if length <= 0 {
		return Instruction{}, fmt.Errorf("length must be positive, got %d", length)
	}

	colorField := fields[2]
	if len(colorField) < 2 || colorField[0] != '(' || colorField[len(colorField)-1] != ')' {
		return Instruction{}, fmt.Errorf("color %q is not parenthesized", colorField)
	}
	color, err := ParseColor(colorField[1 : len(colorField)-1])
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{Direction: direction, Length: length, Color: color}, nil
}
