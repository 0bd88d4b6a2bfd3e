package model

import (
	"errors"
	"fmt"
	"strings"
)

// Tab is one of the sort orders the feed server exposes.
type Tab string

const (
	TabNew Tab = "new"
	TabHot Tab = "hot"
	TabTop Tab = "top"

	DefaultTab = TabHot
)

// ErrUnknownTab is returned by ParseTab for anything but new, hot or top.
var ErrUnknownTab = errors.New("unknown tab")

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabNew, TabHot, TabTop}
}

// ParseTab parses a tab name, ignoring case and surrounding space.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TabNew, TabHot, TabTop:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Suffix is the path element appended to the subreddit URL.
func (t Tab) Suffix() string {
	return string(t)
}

func (t Tab) String() string {
	return string(t)
}
