package dbase

import (
	"golang.org/x/text/encoding/charmap"
)

// CodePage returns the character map for a code page mark, or nil if the mark is unknown.
// The converter never transcodes; the map is only used to name the table's character set.
func CodePage(mark byte) *charmap.Charmap {
	switch mark {
	case 0x01: // U.S. MS-DOS
		return charmap.CodePage437
	case 0x02: // International MS-DOS
		return charmap.CodePage850
	case 0x64: // Eastern European MS-DOS
		return charmap.CodePage852
	case 0x66: // Nordic MS-DOS
		return charmap.CodePage865
	case 0x65: // Russian MS-DOS
		return charmap.CodePage866
	case 0x7C: // Thai Windows
		return charmap.Windows874
	case 0xC8: // Central European Windows
		return charmap.Windows1250
	case 0xC9: // Russian Windows
		return charmap.Windows1251
	case 0x03: // Windows ANSI
		return charmap.Windows1252
	case 0xCB: // Greek Windows
		return charmap.Windows1253
	case 0xCA: // Turkish Windows
		return charmap.Windows1254
	case 0x7D: // Hebrew Windows
		return charmap.Windows1255
	case 0x7E: // Arabic Windows
		return charmap.Windows1256
	default:
		return nil
	}
}
