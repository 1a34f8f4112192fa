package bluecarbon

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/internal"
)

// IconNames returns the names of the bundled screen icons.
func IconNames() []string {
	return internal.IconNames()
}

// WriteIconPNG rasterizes the named icon at size x size pixels and encodes it as PNG.
func WriteIconPNG(w io.Writer, name string, size int) error {
	img, err := internal.RasterizeIcon(name, size)
	if err != nil {
		return NewInfrastructureError("rasterize_icon", err)
	}
	if err := png.Encode(w, img); err != nil {
		return NewInfrastructureError("encode_icon", err)
	}
	return nil
}

// ExportIcons writes every bundled icon as <dir>/<name>.png and returns the written paths.
func ExportIcons(dir string, size int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, NewInfrastructureError("export_icons", err)
	}

	var written []string
	for _, name := range internal.IconNames() {
		path := filepath.Join(dir, name+".png")
		if err := writeIconFile(path, name, size); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeIconFile(path, name string, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return NewInfrastructureError("export_icons", err)
	}

	if err := WriteIconPNG(f, name, size); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return NewInfrastructureError("export_icons", fmt.Errorf("close %s: %w", path, err))
	}
	return nil
}
