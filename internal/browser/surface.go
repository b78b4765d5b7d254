package browser

// Client receives the surface's navigation and progress callbacks
type Client interface {
	// OnNavigate is offered every link or script navigation. Returning
	// true means the target was handled elsewhere and must not load here.
	OnNavigate(target string) bool

	// OnProgress reports page load progress in [0,100]
	OnProgress(progress int)
}

// Surface is the set of operations the screen controller needs
type Surface interface {
	LoadURL(rawURL string)
	Reload()
	CanGoBack() bool
	GoBack()
	HistoryDepth() int
	SetClient(client Client)
}
