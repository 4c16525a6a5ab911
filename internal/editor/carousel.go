package editor

import (
	"sync"
	"time"

	"portfolio-backend/internal/shared/utils"
)

// AutoAdvanceInterval is the fixed period of the carousel timer.
const AutoAdvanceInterval = 5 * time.Second

type CarouselItemKind string

const (
	CarouselImage CarouselItemKind = "image"
	CarouselVideo CarouselItemKind = "video"
)

type CarouselItem struct {
	Kind CarouselItemKind
	URL  string
	// Thumbnail is the preview for video items; empty when no video
	// id could be extracted, in which case the caller renders a
	// placeholder.
	Thumbnail string
}

// Carousel holds one ordered display sequence: the project's images
// followed by an optional trailing video item. Navigation wraps at
// both ends. An optional auto-advance timer runs until the first
// manual interaction or the video is opened.
type Carousel struct {
	mu      sync.Mutex
	items   []CarouselItem
	index   int
	stopped bool
	stopCh  chan struct{}
}

// NewCarousel builds the sequence from the gallery URLs (empty slots
// skipped) and an optional video URL.
func NewCarousel(imageURLs []string, videoURL string) *Carousel {
	items := make([]CarouselItem, 0, len(imageURLs)+1)
	for _, url := range imageURLs {
		if url == "" {
			continue
		}
		items = append(items, CarouselItem{Kind: CarouselImage, URL: url})
	}
	if videoURL != "" {
		items = append(items, CarouselItem{
			Kind:      CarouselVideo,
			URL:       videoURL,
			Thumbnail: utils.YouTubeThumbnail(videoURL),
		})
	}

	return &Carousel{items: items}
}

func (c *Carousel) Items() []CarouselItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CarouselItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Current() (CarouselItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return CarouselItem{}, false
	}
	return c.items[c.index], true
}

// Next moves forward, wrapping past the last item. Manual navigation
// cancels auto-advance.
func (c *Carousel) Next() {
	c.cancelAuto()
	c.advance()
}

// Prev moves backward, wrapping before the first item.
func (c *Carousel) Prev() {
	c.cancelAuto()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return
	}
	c.index = (c.index - 1 + len(c.items)) % len(c.items)
}

// GoTo jumps to an index. Out-of-range indexes are ignored.
func (c *Carousel) GoTo(i int) {
	c.cancelAuto()

	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.items) {
		return
	}
	c.index = i
}

// OpenVideo cancels auto-advance the moment the video starts.
func (c *Carousel) OpenVideo() {
	c.cancelAuto()
}

// StartAuto begins advancing every AutoAdvanceInterval. It is a no-op
// with fewer than two items or when already running.
func (c *Carousel) StartAuto() {
	c.startAuto(AutoAdvanceInterval)
}

func (c *Carousel) startAuto(interval time.Duration) {
	c.mu.Lock()
	if c.stopped || c.stopCh != nil || len(c.items) < 2 {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stopCh = stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.advance()
			}
		}
	}()
}

// AutoRunning reports whether the timer is active.
func (c *Carousel) AutoRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopCh != nil
}

// Close stops the timer for good. Must be called on teardown so the
// ticker does not keep firing against a dismissed view.
func (c *Carousel) Close() {
	c.mu.Lock()
	c.stopped = true
	stop := c.stopCh
	c.stopCh = nil
	c.mu.Unlock()

	if stop != nil {
		close(stop)
	}
}

func (c *Carousel) advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.items)
}

func (c *Carousel) cancelAuto() {
	c.mu.Lock()
	stop := c.stopCh
	c.stopCh = nil
	c.mu.Unlock()

	if stop != nil {
		close(stop)
	}
}
