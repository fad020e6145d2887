package task

import (
	"fmt"
	"image"
	"strings"

	"github.com/pkg/errors"
)

const (
	Row Generation = iota
	Column
	Image
)

// Generation is how a frame is cut into tasks: one per row, one per column
// or a single task for the whole image.
type Generation int

func (g Generation) String() string {
	if g < Row || g > Image {
		return fmt.Sprintf("Generation(%d)", int(g))
	}
	return []string{
		"Row", "Column", "Image",
	}[g]
}

func (g Generation) MarshalText() ([]byte, error) {
	if g < Row || g > Image {
		return nil, errors.Errorf("unknown task generation %d", int(g))
	}
	return []byte(strings.ToLower(g.String())), nil
}

func (g *Generation) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "row":
		*g = Row
	case "column":
		*g = Column
	case "image":
		*g = Image
	default:
		return errors.Errorf("unknown task generation %q", string(text))
	}
	return nil
}

// Task is a rectangle of pixels rendered by a single worker.
type Task struct {
	ID         uint
	Generation Generation
	Bounds     image.Rectangle
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Generation: %s ", t.Generation)
	output += fmt.Sprintf("Bounds: %s}", t.Bounds)
	return output
}

// Split cuts a width x height frame into tasks. Every pixel belongs to
// exactly one task. The result only depends on its arguments, so callers
// split once and reuse the tasks for every frame.
func Split(generation Generation, width int, height int) ([]Task, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("cannot split a %dx%d frame", width, height)
	}

	var tasks []Task
	switch generation {
	case Row:
		tasks = make([]Task, 0, height)
		for row := 0; row < height; row++ {
			tasks = append(tasks, Task{
				ID:         uint(row),
				Generation: generation,
				Bounds:     image.Rect(0, row, width, row+1),
			})
		}
	case Column:
		tasks = make([]Task, 0, width)
		for column := 0; column < width; column++ {
			tasks = append(tasks, Task{
				ID:         uint(column),
				Generation: generation,
				Bounds:     image.Rect(column, 0, column+1, height),
			})
		}
	case Image:
		tasks = []Task{{
			ID:         0,
			Generation: generation,
			Bounds:     image.Rect(0, 0, width, height),
		}}
	default:
		return nil, errors.Errorf("unknown task generation %d", int(generation))
	}
	return tasks, nil
}
