package upload

import (
	"io"
	"time"

	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// IndeterminateProgress is reported while streaming a source of unknown
// size. The terminal callback still reports 1.0 once the last byte is out.
const IndeterminateProgress float64 = -1

// ProgressFunc receives the upload fraction in [0,1], or
// IndeterminateProgress when the total size is unknown.
type ProgressFunc func(fraction float64)

// Copier streams a source into a sink in fixed-size chunks, invoking the
// progress callback at a bounded rate: at most once per Interval, and only
// when the reported whole percent changes. The terminal 1.0 call fires
// exactly once after the final byte regardless of the throttle window.
type Copier struct {
	ChunkSize  int
	Interval   time.Duration
	OnProgress ProgressFunc

	now func() time.Time // test hook
}

// NewCopier returns a copier with the given chunking and throttling
func NewCopier(chunkSize int, interval time.Duration, onProgress ProgressFunc) *Copier {
	return &Copier{
		ChunkSize:  chunkSize,
		Interval:   interval,
		OnProgress: onProgress,
		now:        time.Now,
	}
}

// Copy streams src into dst. total is the expected byte count, or
// SizeUnknown. Any read or write failure aborts the copy and is returned
// as an upload I/O error wrapping the cause; partial writes are not
// retried here.
func (c *Copier) Copy(dst io.Writer, src io.Reader, total int64) (int64, error) {
	clock := c.now
	if clock == nil {
		clock = time.Now
	}

	buf := make([]byte, c.ChunkSize)
	var written int64
	lastCallback := clock()
	lastPercent := -1

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			wn, writeErr := dst.Write(buf[:n])
			written += int64(wn)
			if writeErr != nil {
				return written, types.NewUploadIOError("write aborted mid-stream", writeErr)
			}
			if wn < n {
				return written, types.NewUploadIOError("write aborted mid-stream", io.ErrShortWrite)
			}

			if c.OnProgress != nil {
				nowTime := clock()
				if nowTime.Sub(lastCallback) >= c.Interval {
					fraction := IndeterminateProgress
					percent := -1
					if total > 0 {
						fraction = float64(written) / float64(total)
						if fraction > 1 {
							fraction = 1
						}
						percent = int(fraction * 100)
					}
					// The terminal 1.0 is reported exactly once, after
					// the loop; never from inside it.
					if (percent != lastPercent && percent < 100) || total <= 0 {
						c.OnProgress(fraction)
						lastPercent = percent
						lastCallback = nowTime
					}
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return written, types.NewUploadIOError("local resource unreadable", readErr)
		}
	}

	if c.OnProgress != nil {
		c.OnProgress(1.0)
	}
	return written, nil
}
