package model

// Page is the data rendered by counter.html.
type Page struct {
	Count int
}
