package coffeeshop

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// DefaultImage is used for shops without a dedicated picture.
const DefaultImage = "default.jpg"

//go:embed images.yaml
var builtinImages []byte

var ErrInvalidImageMap = errors.New("coffeeshop: invalid image map")

// ImageMap maps case-folded shop names to image file names.
type ImageMap map[string]string

// DefaultImageMap returns the built-in map of known shops.
func DefaultImageMap() ImageMap {
	m, err := ParseImageMap(builtinImages)
	if err != nil {
		panic(err)
	}
	return m
}

// LoadImageMap reads a YAML name-to-file map from path.
// An empty path yields the built-in map.
func LoadImageMap(path string) (ImageMap, error) {
	if path == "" {
		return DefaultImageMap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image map: %w", err)
	}
	return ParseImageMap(data)
}

// ParseImageMap decodes a YAML document of `shop name: file` pairs.
func ParseImageMap(data []byte) (ImageMap, error) {
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidImageMap, err)
	}

	m := make(ImageMap, len(raw))
	for name, file := range raw {
		if file = strings.TrimSpace(file); file == "" {
			return nil, fmt.Errorf("%w: empty file for %q", ErrInvalidImageMap, name)
		}
		m[foldName(name)] = file
	}
	return m, nil
}

// ImageFilename returns the picture for a shop name. Matching ignores case
// and surrounding spaces; unknown names get DefaultImage.
func (m ImageMap) ImageFilename(name string) string {
	if file, ok := m[foldName(name)]; ok {
		return file
	}
	return DefaultImage
}

func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
