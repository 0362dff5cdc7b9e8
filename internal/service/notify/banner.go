package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// bannerColor is ANSI green.
const bannerColor = lipgloss.Color("2")

// Banner prints the alarm banner to a writer.
type Banner struct {
	mu    sync.Mutex
	w     io.Writer
	style lipgloss.Style
}

// NewBanner creates a banner writing to w.
// Colours are used only when w is a terminal that supports them.
func NewBanner(w io.Writer) *Banner {
	renderer := lipgloss.NewRenderer(w)

	return &Banner{
		w:     w,
		style: renderer.NewStyle().Foreground(bannerColor).Bold(true),
	}
}

// Notify writes the banner for event. It matches scheduler.Handler.
func (b *Banner) Notify(ctx context.Context, event scheduler.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := io.WriteString(b.w, b.Render(event)); err != nil {
		logger.WarnKV(ctx, "Failed to print alarm banner", "error", err)
	}
}

// Render returns the banner text for event, one styled line at a time.
func (b *Banner) Render(event scheduler.Event) string {
	var (
		message = fmt.Sprintf("* RING! RING! RING! Alarm at %s *", event.At.Format(time.TimeOnly))
		border  = strings.Repeat("*", 33)
		out     strings.Builder
	)

	out.WriteString("\n")

	for _, line := range []string{border, message, border} {
		out.WriteString(b.style.Render(line))
		out.WriteString("\n")
	}

	return out.String()
}
