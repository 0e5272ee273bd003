package usecase

import "sync"

type NavLink struct {
	Label string
	Href  string
}

var navLinks = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Search", Href: "/search"},
	{Label: "Explore", Href: "/explore"},
}

// Navigation is the shell shared by every page: a fixed link set and the
// responsive menu toggle.
type Navigation struct {
	mu   sync.Mutex
	open bool
}

func NewNavigation() *Navigation {
	return &Navigation{}
}

func (n *Navigation) Links() []NavLink {
	links := make([]NavLink, len(navLinks))
	copy(links, navLinks)
	return links
}

// Toggle flips the menu and returns the new state.
func (n *Navigation) Toggle() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.open = !n.open
	return n.open
}

// Choose follows a link by href and closes the menu.
func (n *Navigation) Choose(href string) (NavLink, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, l := range navLinks {
		if l.Href == href {
			n.open = false
			return l, true
		}
	}
	return NavLink{}, false
}

func (n *Navigation) Close() {
	n.mu.Lock()
	n.open = false
	n.mu.Unlock()
}

func (n *Navigation) IsOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.open
}
