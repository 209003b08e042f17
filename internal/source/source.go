// Package source reads event lists from files. Sources never write.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/javiermolinar/agenda/internal/event"
)

// ErrUnsupportedFormat is returned by Open for unknown file extensions.
var ErrUnsupportedFormat = errors.New("event file must be .toml or .ics")

// idNamespace scopes derived event ids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/javiermolinar/agenda/events"))

// Open returns the Source for path based on its extension.
func Open(path string) (event.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOMLFile{Path: path}, nil
	case ".ics", ".ical":
		return ICSFile{Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// deriveID returns a stable id for a record that has none, so reloading the
// same file yields the same ids.
func deriveID(e event.Event) string {
	key := strings.Join([]string{e.Title, e.Date, e.StartTime, e.EndTime}, "\x00")
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}

func fillIDs(events []event.Event) {
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = deriveID(events[i])
		}
	}
}
