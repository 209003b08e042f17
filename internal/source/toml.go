package source

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/agenda/internal/event"
)

// TOMLFile reads [[events]] tables from a TOML file.
type TOMLFile struct {
	Path string
}

type tomlDocument struct {
	Events []event.Event `toml:"events"`
}

// Load reads and decodes the file. Records are returned as written, apart
// from a derived id when the id is missing; malformed dates or times are left
// for the core to treat as invalid.
func (f TOMLFile) Load(ctx context.Context) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading event file: %w", err)
	}

	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing event file %s: %w", f.Path, err)
	}

	for i := range doc.Events {
		if doc.Events[i].Repeat.Type == "" {
			doc.Events[i].Repeat.Type = event.RepeatNone
		}
	}
	fillIDs(doc.Events)
	if doc.Events == nil {
		doc.Events = []event.Event{}
	}
	return doc.Events, nil
}
