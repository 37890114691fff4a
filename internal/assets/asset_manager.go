package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Manifest maps asset ids to paths relative to the asset root.
type Manifest struct {
	Images map[string]string
	Sounds map[string]string
}

// Идентификаторы звуков.
const (
	SoundFire   = "fire"
	SoundImpact = "impact"
)

// DefaultManifest — стандартный набор файлов игры. Ключи изображений совпадают
// с app.Image* и ImageID в определениях захватчиков.
func DefaultManifest() Manifest {
	return Manifest{
		Images: map[string]string{
			"background":      filepath.Join("images", "background.png"),
			"ship":            filepath.Join("images", "ship.png"),
			"projectile":      filepath.Join("images", "projectile.png"),
			"invader":         filepath.Join("images", "invader.png"),
			"special_invader": filepath.Join("images", "special_invader.png"),
		},
		Sounds: map[string]string{
			SoundFire:   filepath.Join("sounds", "fire.wav"),
			SoundImpact: filepath.Join("sounds", "impact.wav"),
		},
	}
}

// AssetManager загружает и кэширует изображения и звуки.
// Отсутствующий файл не ошибка игры: вызывающий получает false и рисует заглушку.
type AssetManager struct {
	root   string
	images map[string]image.Image
	sounds map[string][]byte
}

func NewAssetManager(root string) *AssetManager {
	return &AssetManager{
		root:   root,
		images: make(map[string]image.Image),
		sounds: make(map[string][]byte),
	}
}

// LoadImage декодирует PNG и запоминает его под id.
func (m *AssetManager) LoadImage(id, rel string) bool {
	img, err := decodeImage(filepath.Join(m.root, rel))
	if err != nil {
		log.Printf("WARNING: Failed to load image %s: %v", id, err)
		return false
	}
	m.images[id] = img
	log.Printf("Successfully loaded image %s (%dx%d)", id, img.Bounds().Dx(), img.Bounds().Dy())
	return true
}

// LoadSound читает файл звука целиком; декодирование делает аудиослой.
func (m *AssetManager) LoadSound(id, rel string) bool {
	data, err := os.ReadFile(filepath.Join(m.root, rel))
	if err != nil {
		log.Printf("WARNING: Failed to load sound %s: %v", id, err)
		return false
	}
	m.sounds[id] = data
	return true
}

// LoadManifest загружает всё, что есть, и возвращает число успешно загруженных файлов.
func (m *AssetManager) LoadManifest(manifest Manifest) int {
	loaded := 0
	for _, id := range sortedKeys(manifest.Images) {
		if m.LoadImage(id, manifest.Images[id]) {
			loaded++
		}
	}
	for _, id := range sortedKeys(manifest.Sounds) {
		if m.LoadSound(id, manifest.Sounds[id]) {
			loaded++
		}
	}
	return loaded
}

func (m *AssetManager) Image(id string) (image.Image, bool) {
	img, ok := m.images[id]
	return img, ok
}

func (m *AssetManager) Images() map[string]image.Image {
	return m.images
}

func (m *AssetManager) Sound(id string) ([]byte, bool) {
	data, ok := m.sounds[id]
	return data, ok
}

// Cleanup забывает все загруженные ресурсы.
func (m *AssetManager) Cleanup() {
	clear(m.images)
	clear(m.sounds)
	log.Println("All assets unloaded.")
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
