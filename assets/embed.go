package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed textures
var assetsFS embed.FS

// Dir is an optional directory searched before the embedded textures.
var Dir = ""

// LoadImage decodes a texture by file name, trying Dir, then the embedded
// textures directory.
func LoadImage(path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty image path")
	}
	b, err := LoadFile(clean)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return img, nil
}

// LoadFile loads a texture file by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if Dir != "" {
		if b, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	b, err := assetsFS.ReadFile("textures/" + clean)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", clean, err)
	}
	return b, nil
}

// Embedded lists the texture files compiled into the binary.
func Embedded() []string {
	var out []string
	_ = fs.WalkDir(assetsFS, "textures", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isImageFile(path) {
			return nil
		}
		out = append(out, strings.TrimPrefix(path, "textures/"))
		return nil
	})
	return out
}

func isImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/textures/"); idx >= 0 {
			return s[idx+len("/textures/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	for _, prefix := range []string{"assets/", "textures/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	return s
}
