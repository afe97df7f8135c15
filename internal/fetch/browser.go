package fetch

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// renderSettleDelay gives client-side JavaScript time to populate the
// page after the initial load.
const renderSettleDelay = 3 * time.Second

// BrowserStrategy renders a page in a local headless browser and returns
// the resulting HTML. It covers JavaScript-heavy sites when no rendering
// API key is configured. Requires Chrome/Chromium on the host.
type BrowserStrategy struct{}

// Name implements Strategy.
func (s *BrowserStrategy) Name() string { return "browser" }

// Fetch implements Strategy. The surrounding chain applies the timeout
// through ctx.
func (s *BrowserStrategy) Fetch(ctx context.Context, url string) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss common cookie banners. The click waits for the node,
			// so it gets its own short deadline and is skipped when absent.
			clickCtx, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(clickCtx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{Strategy: s.Name(), URL: url, Message: "browser rendering failed", Cause: err}
	}
	return html, nil
}
