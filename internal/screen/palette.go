package screen

// ColorIndex is one of the four two-bit color slots a layer pixel or a
// resolved sprite pixel can hold.
type ColorIndex byte

const (
	ColorZero ColorIndex = iota
	ColorOne
	ColorTwo
	ColorThree
)

// spritePalettes is the fixed table mapping a sprite-write's 4-bit palette
// choice to the four color indices a 2-bit sprite pixel resolves through.
// This is a constant lookup table and must be reproduced byte-for-byte.
var spritePalettes = [16][4]ColorIndex{
	{ColorZero, ColorZero, ColorOne, ColorTwo},
	{ColorZero, ColorOne, ColorTwo, ColorThree},
	{ColorZero, ColorTwo, ColorThree, ColorOne},
	{ColorZero, ColorThree, ColorOne, ColorTwo},
	{ColorOne, ColorZero, ColorOne, ColorTwo},
	{ColorZero, ColorOne, ColorTwo, ColorThree},
	{ColorOne, ColorTwo, ColorThree, ColorOne},
	{ColorOne, ColorThree, ColorOne, ColorTwo},
	{ColorTwo, ColorZero, ColorOne, ColorTwo},
	{ColorTwo, ColorOne, ColorTwo, ColorThree},
	{ColorZero, ColorTwo, ColorThree, ColorOne},
	{ColorTwo, ColorThree, ColorOne, ColorTwo},
	{ColorThree, ColorZero, ColorOne, ColorTwo},
	{ColorThree, ColorOne, ColorTwo, ColorThree},
	{ColorThree, ColorTwo, ColorThree, ColorOne},
	{ColorZero, ColorThree, ColorOne, ColorTwo},
}

func getPalette(choice byte) [4]ColorIndex {
	return spritePalettes[choice&0xf]
}

// color0Transparent reports whether a sprite-pixel value of 0 should be
// skipped rather than painted, for the given palette choice.
func color0Transparent(choice byte) bool {
	return choice != 0 && choice%5 == 0
}
