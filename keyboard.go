package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/duojump/control"
)

var keyNames = map[ebiten.Key]control.Key{
	ebiten.KeyA:          control.KeyA,
	ebiten.KeyD:          control.KeyD,
	ebiten.KeyW:          control.KeyW,
	ebiten.KeyArrowLeft:  control.KeyArrowLeft,
	ebiten.KeyArrowRight: control.KeyArrowRight,
	ebiten.KeyArrowUp:    control.KeyArrowUp,
}

// keyboard adapts ebiten's per-tick key transitions to system.KeySource.
type keyboard struct {
	buf []ebiten.Key
}

func (k *keyboard) AppendJustPressedKeys(keys []control.Key) []control.Key {
	k.buf = inpututil.AppendJustPressedKeys(k.buf[:0])
	return appendControlKeys(keys, k.buf)
}

func (k *keyboard) AppendJustReleasedKeys(keys []control.Key) []control.Key {
	k.buf = inpututil.AppendJustReleasedKeys(k.buf[:0])
	return appendControlKeys(keys, k.buf)
}

func (k *keyboard) IsFocused() bool {
	return ebiten.IsFocused()
}

func appendControlKeys(dst []control.Key, keys []ebiten.Key) []control.Key {
	for _, key := range keys {
		if name, ok := keyNames[key]; ok {
			dst = append(dst, name)
			continue
		}
		dst = append(dst, control.Key(key.String()))
	}
	return dst
}
