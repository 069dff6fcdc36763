package styles

// Status glyphs used by the console printer.
var (
	IconSuccess = "✔"
	IconInfo    = "•"
	IconWarn    = "!"
	IconError   = "✘"
	IconArrow   = "→"
)
