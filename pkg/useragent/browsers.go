package useragent

import "context"

// Per-browser shorthands for Call. Each accepts the same optional
// arguments: a lone true to refresh, or a filter followed by a refresh flag.

func (a *Agent) Chrome(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserChrome, args...)
}

func (a *Agent) Safari(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserSafari, args...)
}

func (a *Agent) Firefox(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserFirefox, args...)
}

func (a *Agent) UCBrowser(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserUCBrowser, args...)
}

func (a *Agent) Opera(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserOpera, args...)
}

func (a *Agent) SamsungBrowser(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserSamsungBrowser, args...)
}

func (a *Agent) Edge(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserEdge, args...)
}

func (a *Agent) InternetExplorer(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserInternetExplorer, args...)
}

func (a *Agent) Wechat(ctx context.Context, args ...any) (string, bool, error) {
	return a.Call(ctx, BrowserWechat, args...)
}
