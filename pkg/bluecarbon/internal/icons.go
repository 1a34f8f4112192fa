package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"path"
	"sort"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed icons/*.svg
var iconFS embed.FS

// IconNames returns the names of every bundled icon, sorted.
func IconNames() []string {
	entries, err := iconFS.ReadDir("icons")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}

// IconSVG returns the raw SVG source of an icon.
func IconSVG(name string) ([]byte, error) {
	data, err := iconFS.ReadFile(path.Join("icons", name+".svg"))
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", name, err)
	}
	return data, nil
}

// RasterizeIcon renders an icon into a size x size RGBA image.
func RasterizeIcon(name string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon %q: invalid size %d", name, size)
	}

	data, err := IconSVG(name)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icon %q: parse svg: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return img, nil
}
