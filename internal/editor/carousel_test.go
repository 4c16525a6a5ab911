package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarouselWrapAround(t *testing.T) {
	c := NewCarousel([]string{"a.jpg", "b.jpg"}, "https://youtu.be/dQw4w9WgXcQ")
	defer c.Close()

	items := c.Items()
	require.Len(t, items, 3)

	// N nexts from 0 land back on 0.
	for i := 0; i < len(items); i++ {
		c.Next()
	}
	assert.Equal(t, 0, c.Index())

	// Prev from 0 wraps to the last item.
	c.Prev()
	assert.Equal(t, len(items)-1, c.Index())
}

func TestCarouselVideoThumbnail(t *testing.T) {
	c := NewCarousel([]string{"a.jpg"}, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	defer c.Close()

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, CarouselVideo, items[1].Kind)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg", items[1].Thumbnail)
}

func TestCarouselUnrecognizedVideoGetsEmptyThumbnail(t *testing.T) {
	c := NewCarousel(nil, "https://example.com/video")
	defer c.Close()

	items := c.Items()
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Thumbnail)
}

func TestCarouselSkipsEmptyImageSlots(t *testing.T) {
	c := NewCarousel([]string{"a.jpg", ""}, "")
	defer c.Close()

	assert.Len(t, c.Items(), 1)
}

func TestCarouselGoToIgnoresOutOfRange(t *testing.T) {
	c := NewCarousel([]string{"a.jpg", "b.jpg"}, "")
	defer c.Close()

	c.GoTo(1)
	assert.Equal(t, 1, c.Index())

	c.GoTo(5)
	assert.Equal(t, 1, c.Index())
	c.GoTo(-1)
	assert.Equal(t, 1, c.Index())
}

func TestCarouselAutoAdvanceCancelledByInteraction(t *testing.T) {
	c := NewCarousel([]string{"a.jpg", "b.jpg", "c.jpg"}, "")
	defer c.Close()

	c.startAuto(10 * time.Millisecond)
	require.True(t, c.AutoRunning())

	assert.Eventually(t, func() bool {
		return c.Index() != 0
	}, time.Second, 2*time.Millisecond)

	c.Next()
	assert.False(t, c.AutoRunning())

	// Opening the video also stops the timer.
	c2 := NewCarousel([]string{"a.jpg", "b.jpg"}, "https://youtu.be/dQw4w9WgXcQ")
	defer c2.Close()
	c2.startAuto(10 * time.Millisecond)
	c2.OpenVideo()
	assert.False(t, c2.AutoRunning())
}

func TestCarouselAutoNotStartedForSingleItem(t *testing.T) {
	c := NewCarousel([]string{"a.jpg"}, "")
	defer c.Close()

	c.StartAuto()
	assert.False(t, c.AutoRunning())
}

func TestCarouselCloseStopsTimer(t *testing.T) {
	c := NewCarousel([]string{"a.jpg", "b.jpg"}, "")
	c.startAuto(10 * time.Millisecond)
	c.Close()
	assert.False(t, c.AutoRunning())

	// A closed carousel never restarts.
	c.StartAuto()
	assert.False(t, c.AutoRunning())
}
