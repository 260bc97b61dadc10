package content

import (
	"embed"
	"fmt"
)

//go:embed levels/*.sok
var levelFiles embed.FS

// Level pairs a display name with the glyph source text the game parses.
type Level struct {
	Name   string
	Source string
}

// levelOrder lists the bundled files in play order. Directory reads sort
// lexically, which would shuffle the difficulty curve.
var levelOrder = []string{
	"Simple Right.sok",
	"Simple Down.sok",
	"Simple Left.sok",
	"Simple Up.sok",
	"Simple Up Wide.sok",
	"Circle.sok",
	"Skull.sok",
	"Snake.sok",
	"Chunky.sok",
	"Lanky.sok",
	"Empty Section.sok",
}

// Levels returns the bundled level set in play order.
func Levels() []Level {
	levels := make([]Level, len(levelOrder))
	for i, name := range levelOrder {
		source, err := levelFiles.ReadFile("levels/" + name)
		if err != nil {
			panic(fmt.Sprintf("content: bundled level %q missing: %v", name, err))
		}
		levels[i] = Level{Name: name, Source: string(source)}
	}
	return levels
}
