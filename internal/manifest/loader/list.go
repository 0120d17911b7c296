package loader

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	pkgmanifest "github.com/goliatone/go-oplist/pkg/manifest"
)

// expandList reads a list file and returns a file (or fs) source per
// whitespace-separated entry. The list itself resolves against the injected
// filesystem when one is configured, matching how its entries will load.
func expandList(ctx context.Context, filesystem fs.FS, path string) ([]pkgmanifest.Source, error) {
	var (
		data []byte
		err  error
	)
	if filesystem != nil {
		data, err = loadFromFS(ctx, filesystem, path)
	} else {
		data, err = loadFile(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	entries := strings.Fields(string(data))
	if len(entries) == 0 {
		return nil, errors.New("list file names no manifests")
	}

	sources := make([]pkgmanifest.Source, 0, len(entries))
	for _, entry := range entries {
		if filesystem != nil {
			sources = append(sources, pkgmanifest.SourceFromFS(entry))
			continue
		}
		sources = append(sources, pkgmanifest.SourceFromFile(entry))
	}
	return sources, nil
}
