// Package pixel decodes on/off pixel images into text.
//
// Several puzzles print their answer as a banner of 4x6 pixel letters
// separated by one blank column. Decode matches each letter against an
// embedded font sheet and returns the spelled word. The on and off pixel
// marks are configurable, so banners drawn with "█"/" " or "#"/"." both
// decode with the same parser.
//
// Errors
//
//	ErrBadImage     - the image rows break the expected 4x6 letter grid.
//	ErrUnknownGlyph - a letter does not match any glyph in the font sheet.
package pixel
