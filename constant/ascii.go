package constant

import _ "embed"

// AsciiArtLogo is printed by the version command.
//
//go:embed ascii.txt
var AsciiArtLogo string
