package legacy

import (
	"encoding/json"
	"fmt"
	"os"

	"shelter-dogs/internal/domain/dogs/profile"
)

// Entry es una fila del listado del sitio viejo (all-dogs.json).
type Entry struct {
	Name string       `json:"name"`
	URL  string       `json:"url"`
	Size profile.Size `json:"size"`
}

// DescriptionRecord es la salida del scraping (dogs-descriptions.json).
type DescriptionRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SizeFolders: carpeta local por porte, como las organizaba el sitio viejo.
var SizeFolders = map[profile.Size]string{
	profile.SizeSmall:  "pequenos",
	profile.SizeMedium: "medios",
	profile.SizeLarge:  "grandes",
}

func SizeFolder(s profile.Size) string {
	if f, ok := SizeFolders[s]; ok {
		return f
	}
	return "outros"
}

func ReadJSON[T any](path string) ([]T, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("legacy: parse %s: %w", path, err)
	}
	return out, nil
}

func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
