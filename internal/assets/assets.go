// Package assets loads the sprite images, background image and fire sound
// the shooter needs at startup. A missing or undecodable file is an error:
// the game never starts with a partial pack.
package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/jpeg" // Background may be a JPEG
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/vovakirdan/starshot/internal/config"
)

//go:embed pack/*
var embedded embed.FS

// Embedded returns the asset pack compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "pack")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded pack: %v", err))
	}
	return sub
}

// Dir returns an asset pack rooted at a directory on disk.
func Dir(dir string) fs.FS {
	return os.DirFS(dir)
}

// Sound is an undecoded sound file from the pack.
type Sound struct {
	Name string // File name; the extension selects the decoder
	Data []byte
}

// Ext returns the lower-case extension of the sound file, without the dot.
func (s Sound) Ext() string {
	ext := path.Ext(s.Name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// Pack holds everything loaded from an asset pack.
type Pack struct {
	Block      Sprite
	Player     Sprite
	Bullet     Sprite
	Background *Backdrop
	FireSound  Sound
}

// Load reads and decodes every asset named in cfg from fsys.
func Load(fsys fs.FS, cfg config.AssetsConfig) (*Pack, error) {
	block, err := loadSprite(fsys, cfg.Block)
	if err != nil {
		return nil, err
	}
	player, err := loadSprite(fsys, cfg.Player)
	if err != nil {
		return nil, err
	}
	bullet, err := loadSprite(fsys, cfg.Bullet)
	if err != nil {
		return nil, err
	}

	bgImg, err := loadImage(fsys, cfg.Background)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, cfg.FireSound)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", cfg.FireSound, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("assets: %s is empty", cfg.FireSound)
	}

	return &Pack{
		Block:      block,
		Player:     player,
		Bullet:     bullet,
		Background: NewBackdrop(bgImg, cfg.BackgroundDim),
		FireSound:  Sound{Name: cfg.FireSound, Data: data},
	}, nil
}

// loadImage opens and decodes one image file.
func loadImage(fsys fs.FS, name string) (image.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("assets: missing file name")
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", name, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("assets: %s has no pixels", name)
	}
	return img, nil
}
