// Package storage содержит кэш карт заметности.
package storage

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"

	"arai-engine/internal/domain/entity"
	"arai-engine/internal/domain/port"
)

// LRUSaliencyCache хранит недавние карты заметности в памяти.
// Кэш потокобезопасен и вытесняет старые записи по мере заполнения.
type LRUSaliencyCache struct {
	cache *lru.Cache[string, *entity.SaliencyMap]
}

var _ port.SaliencyCache = (*LRUSaliencyCache)(nil)

// NewLRUSaliencyCache создаёт кэш на заданное число карт.
func NewLRUSaliencyCache(size int) (*LRUSaliencyCache, error) {
	c, err := lru.New[string, *entity.SaliencyMap](size)
	if err != nil {
		return nil, err
	}
	return &LRUSaliencyCache{cache: c}, nil
}

// Get возвращает карту для пары изображение-предсказатель, если она в кэше.
func (c *LRUSaliencyCache) Get(img image.Image, predictor string) (*entity.SaliencyMap, bool) {
	return c.cache.Get(cacheKey(img, predictor))
}

// Put сохраняет карту для пары изображение-предсказатель.
func (c *LRUSaliencyCache) Put(img image.Image, predictor string, m *entity.SaliencyMap) {
	c.cache.Add(cacheKey(img, predictor), m)
}

// cacheKey строит ключ кэша по содержимому изображения и имени предсказателя.
func cacheKey(img image.Image, predictor string) string {
	h := sha256.New()
	b := img.Bounds()
	fmt.Fprintf(h, "%s:%dx%d:", predictor, b.Dx(), b.Dy())

	switch t := img.(type) {
	case *image.RGBA:
		h.Write(t.Pix)
	case *image.NRGBA:
		h.Write(t.Pix)
	default:
		var px [8]byte
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, a := img.At(x, y).RGBA()
				binary.BigEndian.PutUint16(px[0:], uint16(r))
				binary.BigEndian.PutUint16(px[2:], uint16(g))
				binary.BigEndian.PutUint16(px[4:], uint16(bl))
				binary.BigEndian.PutUint16(px[6:], uint16(a))
				h.Write(px[:])
			}
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
