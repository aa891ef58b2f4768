package core

import (
	"fmt"
	"math"
	"os"
)

const (
	imageDir = "images"
	imageExt = ".png"
)

// ImagePath builds the on-disk path for a hero's portrait. The hero name is
// used verbatim: the filename must match the pool entry byte for byte,
// including spaces, punctuation and case (e.g. "images/D.Va.png",
// "images/Soldier 76.png").
func ImagePath(name string) string {
	return imageDir + "/" + name + imageExt
}

// FindImage resolves the portrait path for name and checks that a regular
// file exists there, relative to the process working directory. A missing
// path (or a directory squatting on it) yields ErrImageNotFound.
func FindImage(name string) (string, error) {
	path := ImagePath(name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}
	return path, nil
}

// FitSize computes the dimensions of a srcW x srcH image scaled uniformly to
// fit inside maxW x maxH while preserving aspect ratio. Each axis is rounded
// to the nearest pixel and clamped to at least 1.
func FitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 1
	}
	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
