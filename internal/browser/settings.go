package browser

// Settings configures the surface the way the hosted app needs it
type Settings struct {
	JavaScriptEnabled bool
	DOMStorageEnabled bool
	UseWideViewPort   bool
	SupportZoom       bool
	AllowFileAccess   bool
}

// DefaultSettings enables what a modern web app needs and keeps the file
// system and zoom off.
func DefaultSettings() Settings {
	return Settings{
		JavaScriptEnabled: true,
		DOMStorageEnabled: true,
		UseWideViewPort:   true,
		SupportZoom:       false,
		AllowFileAccess:   false,
	}
}
