package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"themed-todo/internal/logger"
	"themed-todo/internal/theme"
)

const component = "AssetLoader"

// Name identifies an image inside a theme directory
type Name string

const (
	Logo        Name = "logo"
	Add         Name = "add"
	Delete      Name = "delete"
	Complete    Name = "complete"
	ThemeToggle Name = "theme"
	Background  Name = "paper_bg"
)

const (
	LogoSize = 40
	IconSize = 32
)

// Extensions are tried in order when resolving a name
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

// ErrAssetNotFound is returned when no file with a known extension exists
var ErrAssetNotFound = errors.New("asset not found")

// placeholderColor fills icons that could not be loaded
var placeholderColor = color.NRGBA{R: 255, G: 0, B: 0, A: 128}

// imageDef describes one image of a set; size 0 keeps the decoded dimensions
type imageDef struct {
	name Name
	size int
}

var imageDefs = []imageDef{
	{Logo, LogoSize},
	{Add, IconSize},
	{Delete, IconSize},
	{Complete, IconSize},
	{ThemeToggle, IconSize},
	{Background, 0},
}

// Asset is a decoded image ready for the canvas and for buttons
type Asset struct {
	Name        Name
	Path        string
	Image       image.Image
	Resource    fyne.Resource
	Placeholder bool
}

// IconSet holds every asset of one theme
type IconSet struct {
	Theme  theme.Theme
	assets map[Name]*Asset
}

// Get returns the named asset; every name in the set is always present
func (s *IconSet) Get(name Name) *Asset {
	return s.assets[name]
}

// Resource is shorthand for Get(name).Resource
func (s *IconSet) Resource(name Name) fyne.Resource {
	if a := s.assets[name]; a != nil {
		return a.Resource
	}
	return nil
}

// Placeholders lists the names that fell back to a placeholder
func (s *IconSet) Placeholders() []Name {
	var names []Name
	for _, sp := range imageDefs {
		if a := s.assets[sp.name]; a != nil && a.Placeholder {
			names = append(names, sp.name)
		}
	}
	return names
}

// Loader resolves theme-specific images under root/<theme>/.
// Load never fails: unreadable files become placeholders.
type Loader struct {
	root   string
	logger logger.Logger

	mu    sync.Mutex
	cache map[theme.Theme]*IconSet
}

// NewLoader creates a loader rooted at the assets directory
func NewLoader(root string, log logger.Logger) *Loader {
	return &Loader{
		root:   root,
		logger: log,
		cache:  make(map[theme.Theme]*IconSet),
	}
}

// Root returns the assets directory
func (l *Loader) Root() string {
	return l.root
}

// ThemeDir returns the directory holding a theme's images
func (l *Loader) ThemeDir(t theme.Theme) string {
	return filepath.Join(l.root, t.String())
}

// Load returns the theme's icon set, decoding files on first use
func (l *Loader) Load(t theme.Theme) *IconSet {
	l.mu.Lock()
	defer l.mu.Unlock()

	if set, ok := l.cache[t]; ok {
		return set
	}

	set := &IconSet{Theme: t, assets: make(map[Name]*Asset, len(imageDefs))}
	for _, sp := range imageDefs {
		set.assets[sp.name] = l.loadAsset(t, sp)
	}
	l.cache[t] = set

	l.logger.Debug(component, "icon set loaded", map[string]interface{}{
		"theme":        t.String(),
		"placeholders": len(set.Placeholders()),
	})
	return set
}

// Invalidate drops every cached set
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[theme.Theme]*IconSet)
}

// InvalidateTheme drops the cached set of one theme
func (l *Loader) InvalidateTheme(t theme.Theme) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, t)
}

func (l *Loader) loadAsset(t theme.Theme, sp imageDef) *Asset {
	dir := l.ThemeDir(t)
	asset := &Asset{Name: sp.name}

	path, err := resolve(dir, sp.name)
	if err == nil {
		asset.Path = path
		asset.Image, err = decodeFile(path, sp.size)
	}
	if err != nil {
		if asset.Path == "" {
			asset.Path = filepath.Join(dir, string(sp.name)+Extensions[0])
		}
		l.logger.Warning(component, "using placeholder image", map[string]interface{}{
			"theme": t.String(),
			"asset": string(sp.name),
			"path":  asset.Path,
			"error": err.Error(),
		})
		asset.Image = Placeholder(sp.size)
		asset.Placeholder = true
	}

	resourceName := fmt.Sprintf("%s-%s.png", t, sp.name)
	res, err := toResource(resourceName, asset.Image)
	if err != nil {
		l.logger.Error(component, err, map[string]interface{}{"asset": resourceName})
		res, _ = toResource(resourceName, Placeholder(sp.size))
	}
	asset.Resource = res
	return asset
}

func resolve(dir string, name Name) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, string(name)+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s in %s: %w", name, dir, ErrAssetNotFound)
}

func decodeFile(path string, size int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if size <= 0 {
		return img, nil
	}
	return Scale(img, size), nil
}

// Scale resizes img to a size x size square
func Scale(img image.Image, size int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Placeholder returns a translucent red square of the given size. Size 0
// gives a single transparent pixel, used for missing backgrounds.
func Placeholder(size int) image.Image {
	if size <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderColor), image.Point{}, draw.Src)
	return img
}

func toResource(name string, img image.Image) (fyne.Resource, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return fyne.NewStaticResource(name, buf.Bytes()), nil
}
