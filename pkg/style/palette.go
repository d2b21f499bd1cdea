package style

// RGB is a color triple as stored in the palette table.
type RGB struct {
	R, G, B uint8
}

// DefaultRGB is the fallback for unknown color tokens (gray-500).
var DefaultRGB = RGB{0x6B, 0x72, 0x80}

// palette maps "name-shade" color tokens to their fixed triples. The table
// is never mutated; lookups fall back to DefaultRGB.
var palette = map[string]RGB{
	"white": {0xFF, 0xFF, 0xFF},
	"black": {0x00, 0x00, 0x00},

	"slate-50":  {0xF8, 0xFA, 0xFC},
	"slate-100": {0xF1, 0xF5, 0xF9},
	"slate-200": {0xE2, 0xE8, 0xF0},
	"slate-300": {0xCB, 0xD5, 0xE1},
	"slate-400": {0x94, 0xA3, 0xB8},
	"slate-500": {0x64, 0x74, 0x8B},
	"slate-600": {0x47, 0x55, 0x69},
	"slate-700": {0x33, 0x41, 0x55},
	"slate-800": {0x1E, 0x29, 0x3B},
	"slate-900": {0x0F, 0x17, 0x2A},

	"gray-50":  {0xF9, 0xFA, 0xFB},
	"gray-100": {0xF3, 0xF4, 0xF6},
	"gray-200": {0xE5, 0xE7, 0xEB},
	"gray-300": {0xD1, 0xD5, 0xDB},
	"gray-400": {0x9C, 0xA3, 0xAF},
	"gray-500": {0x6B, 0x72, 0x80},
	"gray-600": {0x4B, 0x55, 0x63},
	"gray-700": {0x37, 0x41, 0x51},
	"gray-800": {0x1F, 0x29, 0x37},
	"gray-900": {0x11, 0x18, 0x27},

	"zinc-50":  {0xFA, 0xFA, 0xFA},
	"zinc-100": {0xF4, 0xF4, 0xF5},
	"zinc-200": {0xE4, 0xE4, 0xE7},
	"zinc-300": {0xD4, 0xD4, 0xD8},
	"zinc-400": {0xA1, 0xA1, 0xAA},
	"zinc-500": {0x71, 0x71, 0x7A},
	"zinc-600": {0x52, 0x52, 0x5B},
	"zinc-700": {0x3F, 0x3F, 0x46},
	"zinc-800": {0x27, 0x27, 0x2A},
	"zinc-900": {0x18, 0x18, 0x1B},

	"red-50":  {0xFE, 0xF2, 0xF2},
	"red-100": {0xFE, 0xE2, 0xE2},
	"red-200": {0xFE, 0xCA, 0xCA},
	"red-300": {0xFC, 0xA5, 0xA5},
	"red-400": {0xF8, 0x71, 0x71},
	"red-500": {0xEF, 0x44, 0x44},
	"red-600": {0xDC, 0x26, 0x26},
	"red-700": {0xB9, 0x1C, 0x1C},
	"red-800": {0x99, 0x1B, 0x1B},
	"red-900": {0x7F, 0x1D, 0x1D},

	"orange-50":  {0xFF, 0xF7, 0xED},
	"orange-100": {0xFF, 0xED, 0xD5},
	"orange-200": {0xFE, 0xD7, 0xAA},
	"orange-300": {0xFD, 0xBA, 0x74},
	"orange-400": {0xFB, 0x92, 0x3C},
	"orange-500": {0xF9, 0x73, 0x16},
	"orange-600": {0xEA, 0x58, 0x0C},
	"orange-700": {0xC2, 0x41, 0x0C},
	"orange-800": {0x9A, 0x34, 0x12},
	"orange-900": {0x7C, 0x2D, 0x12},

	"amber-50":  {0xFF, 0xFB, 0xEB},
	"amber-100": {0xFE, 0xF3, 0xC7},
	"amber-200": {0xFD, 0xE6, 0x8A},
	"amber-300": {0xFC, 0xD3, 0x4D},
	"amber-400": {0xFB, 0xBF, 0x24},
	"amber-500": {0xF5, 0x9E, 0x0B},
	"amber-600": {0xD9, 0x77, 0x06},
	"amber-700": {0xB4, 0x53, 0x09},
	"amber-800": {0x92, 0x40, 0x0E},
	"amber-900": {0x78, 0x35, 0x0F},

	"yellow-50":  {0xFE, 0xFC, 0xE8},
	"yellow-100": {0xFE, 0xF9, 0xC3},
	"yellow-200": {0xFE, 0xF0, 0x8A},
	"yellow-300": {0xFD, 0xE0, 0x47},
	"yellow-400": {0xFA, 0xCC, 0x15},
	"yellow-500": {0xEA, 0xB3, 0x08},
	"yellow-600": {0xCA, 0x8A, 0x04},
	"yellow-700": {0xA1, 0x62, 0x07},
	"yellow-800": {0x85, 0x4D, 0x0E},
	"yellow-900": {0x71, 0x3F, 0x12},

	"green-50":  {0xF0, 0xFD, 0xF4},
	"green-100": {0xDC, 0xFC, 0xE7},
	"green-200": {0xBB, 0xF7, 0xD0},
	"green-300": {0x86, 0xEF, 0xAC},
	"green-400": {0x4A, 0xDE, 0x80},
	"green-500": {0x22, 0xC5, 0x5E},
	"green-600": {0x16, 0xA3, 0x4A},
	"green-700": {0x15, 0x80, 0x3D},
	"green-800": {0x16, 0x65, 0x34},
	"green-900": {0x14, 0x53, 0x2D},

	"emerald-50":  {0xEC, 0xFD, 0xF5},
	"emerald-100": {0xD1, 0xFA, 0xE5},
	"emerald-200": {0xA7, 0xF3, 0xD0},
	"emerald-300": {0x6E, 0xE7, 0xB7},
	"emerald-400": {0x34, 0xD3, 0x99},
	"emerald-500": {0x10, 0xB9, 0x81},
	"emerald-600": {0x05, 0x96, 0x69},
	"emerald-700": {0x04, 0x78, 0x57},
	"emerald-800": {0x06, 0x5F, 0x46},
	"emerald-900": {0x06, 0x4E, 0x3B},

	"teal-50":  {0xF0, 0xFD, 0xFA},
	"teal-100": {0xCC, 0xFB, 0xF1},
	"teal-200": {0x99, 0xF6, 0xE4},
	"teal-300": {0x5E, 0xEA, 0xD4},
	"teal-400": {0x2D, 0xD4, 0xBF},
	"teal-500": {0x14, 0xB8, 0xA6},
	"teal-600": {0x0D, 0x94, 0x88},
	"teal-700": {0x0F, 0x76, 0x6E},
	"teal-800": {0x11, 0x5E, 0x59},
	"teal-900": {0x13, 0x4E, 0x4A},

	"cyan-50":  {0xEC, 0xFE, 0xFF},
	"cyan-100": {0xCF, 0xFA, 0xFE},
	"cyan-200": {0xA5, 0xF3, 0xFC},
	"cyan-300": {0x67, 0xE8, 0xF9},
	"cyan-400": {0x22, 0xD3, 0xEE},
	"cyan-500": {0x06, 0xB6, 0xD4},
	"cyan-600": {0x08, 0x91, 0xB2},
	"cyan-700": {0x0E, 0x74, 0x90},
	"cyan-800": {0x15, 0x5E, 0x75},
	"cyan-900": {0x16, 0x4E, 0x63},

	"sky-50":  {0xF0, 0xF9, 0xFF},
	"sky-100": {0xE0, 0xF2, 0xFE},
	"sky-200": {0xBA, 0xE6, 0xFD},
	"sky-300": {0x7D, 0xD3, 0xFC},
	"sky-400": {0x38, 0xBD, 0xF8},
	"sky-500": {0x0E, 0xA5, 0xE9},
	"sky-600": {0x02, 0x84, 0xC7},
	"sky-700": {0x03, 0x69, 0xA1},
	"sky-800": {0x07, 0x59, 0x85},
	"sky-900": {0x0C, 0x4A, 0x6E},

	"blue-50":  {0xEF, 0xF6, 0xFF},
	"blue-100": {0xDB, 0xEA, 0xFE},
	"blue-200": {0xBF, 0xDB, 0xFE},
	"blue-300": {0x93, 0xC5, 0xFD},
	"blue-400": {0x60, 0xA5, 0xFA},
	"blue-500": {0x3B, 0x82, 0xF6},
	"blue-600": {0x25, 0x63, 0xEB},
	"blue-700": {0x1D, 0x4E, 0xD8},
	"blue-800": {0x1E, 0x40, 0xAF},
	"blue-900": {0x1E, 0x3A, 0x8A},

	"indigo-50":  {0xEE, 0xF2, 0xFF},
	"indigo-100": {0xE0, 0xE7, 0xFF},
	"indigo-200": {0xC7, 0xD2, 0xFE},
	"indigo-300": {0xA5, 0xB4, 0xFC},
	"indigo-400": {0x81, 0x8C, 0xF8},
	"indigo-500": {0x63, 0x66, 0xF1},
	"indigo-600": {0x4F, 0x46, 0xE5},
	"indigo-700": {0x43, 0x38, 0xCA},
	"indigo-800": {0x37, 0x30, 0xA3},
	"indigo-900": {0x31, 0x2E, 0x81},

	"violet-50":  {0xF5, 0xF3, 0xFF},
	"violet-100": {0xED, 0xE9, 0xFE},
	"violet-200": {0xDD, 0xD6, 0xFE},
	"violet-300": {0xC4, 0xB5, 0xFD},
	"violet-400": {0xA7, 0x8B, 0xFA},
	"violet-500": {0x8B, 0x5C, 0xF6},
	"violet-600": {0x7C, 0x3A, 0xED},
	"violet-700": {0x6D, 0x28, 0xD9},
	"violet-800": {0x5B, 0x21, 0xB6},
	"violet-900": {0x4C, 0x1D, 0x95},

	"purple-50":  {0xFA, 0xF5, 0xFF},
	"purple-100": {0xF3, 0xE8, 0xFF},
	"purple-200": {0xE9, 0xD5, 0xFF},
	"purple-300": {0xD8, 0xB4, 0xFE},
	"purple-400": {0xC0, 0x84, 0xFC},
	"purple-500": {0xA8, 0x55, 0xF7},
	"purple-600": {0x93, 0x33, 0xEA},
	"purple-700": {0x7E, 0x22, 0xCE},
	"purple-800": {0x6B, 0x21, 0xA8},
	"purple-900": {0x58, 0x1C, 0x87},

	"pink-50":  {0xFD, 0xF2, 0xF8},
	"pink-100": {0xFC, 0xE7, 0xF3},
	"pink-200": {0xFB, 0xCF, 0xE8},
	"pink-300": {0xF9, 0xA8, 0xD4},
	"pink-400": {0xF4, 0x72, 0xB6},
	"pink-500": {0xEC, 0x48, 0x99},
	"pink-600": {0xDB, 0x27, 0x77},
	"pink-700": {0xBE, 0x18, 0x5D},
	"pink-800": {0x9D, 0x17, 0x4D},
	"pink-900": {0x83, 0x18, 0x43},

	"rose-50":  {0xFF, 0xF1, 0xF2},
	"rose-100": {0xFF, 0xE4, 0xE6},
	"rose-200": {0xFE, 0xCD, 0xD3},
	"rose-300": {0xFD, 0xA4, 0xAF},
	"rose-400": {0xFB, 0x71, 0x85},
	"rose-500": {0xF4, 0x3F, 0x5E},
	"rose-600": {0xE1, 0x1D, 0x48},
	"rose-700": {0xBE, 0x12, 0x3C},
	"rose-800": {0x9F, 0x12, 0x39},
	"rose-900": {0x88, 0x13, 0x37},
}
