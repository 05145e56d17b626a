package vm

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

// HEADER_PREFIX is the magic that starts a program image.
var HEADER_PREFIX = [4]byte{45, 50, 49, 45}

// HEADER_LENGTH is the size of the image header, prefix included.
const HEADER_LENGTH = 64

// PrependHeader returns the program preceded by an image header.
func PrependHeader(program []byte) (image []byte) {
	image = make([]byte, HEADER_LENGTH, HEADER_LENGTH+len(program))
	copy(image, HEADER_PREFIX[:])
	image = append(image, program...)
	return
}

// VerifyHeader is true if image starts with a complete image header.
func VerifyHeader(image []byte) bool {
	return len(image) >= HEADER_LENGTH && bytes.HasPrefix(image, HEADER_PREFIX[:])
}

// StripHeader returns the program of an image.
func StripHeader(image []byte) (program []byte, err error) {
	if !VerifyHeader(image) {
		err = ErrHeaderInvalid
		return
	}

	program = image[HEADER_LENGTH:]
	return
}

// LoadImage reads a program image file and returns its program.
func LoadImage(path string) ([]byte, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load image")
	}

	program, err := StripHeader(image)
	if err != nil {
		return nil, errors.Wrapf(err, "load image %v", path)
	}

	return program, nil
}

// SaveImage writes program as an image file.
func SaveImage(path string, program []byte) error {
	err := os.WriteFile(path, PrependHeader(program), 0o644)
	if err != nil {
		return errors.Wrap(err, "save image")
	}

	return nil
}
