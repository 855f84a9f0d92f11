package render

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// Recorder appends every observed frame to an MJPEG AVI file.
type Recorder struct {
	path     string
	cellSize int
	fps      int32
	quality  int

	aw     mjpeg.AviWriter
	buf    bytes.Buffer
	frames int
}

// NewRecorder prepares a recorder. The file is created lazily on the first
// frame so its dimensions follow the grid.
func NewRecorder(path string, cellSize, fps int) *Recorder {
	if fps <= 0 {
		fps = 10
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Recorder{path: path, cellSize: cellSize, fps: int32(fps), quality: 90}
}

// Observe encodes the scene as the next video frame.
func (r *Recorder) Observe(_ int, scene Scene) error {
	img := Rasterize(scene, r.cellSize)
	if r.aw == nil {
		b := img.Bounds()
		aw, err := mjpeg.New(r.path, int32(b.Dx()), int32(b.Dy()), r.fps)
		if err != nil {
			return fmt.Errorf("open video %s: %w", r.path, err)
		}
		r.aw = aw
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &jpeg.Options{Quality: r.quality}); err != nil {
		return fmt.Errorf("encode frame %d: %w", r.frames, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalizes the AVI index. It is a no-op when no frame was recorded.
func (r *Recorder) Close() error {
	if r.aw == nil {
		return nil
	}
	err := r.aw.Close()
	r.aw = nil
	if err != nil {
		return fmt.Errorf("close video %s: %w", r.path, err)
	}
	return nil
}
