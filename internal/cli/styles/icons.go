package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconTrash   = "\uf1f8" // trash
	IconConfig  = "\ue615" // config
	IconGlobe   = "\uf0ac" // site
	IconClock   = "\uf017" // schedule
	IconMoon    = "\uf186" // override on
	IconSun     = "\uf185" // override off
	IconPalette = "\uf53f" // theme
	IconCursor  = "\uf054" // focused page
)
