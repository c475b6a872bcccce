package utils

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RandomDisplayColor returns a random hex color assigned to a user at
// registration and used to tag them across the feed, board and chat.
func RandomDisplayColor() string {
	return colorful.HappyColor().Hex()
}
