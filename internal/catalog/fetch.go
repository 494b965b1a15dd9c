package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"realuseragent/internal/metrics"
)

// PageURL builds {base}/{category}/{name}/{page}?order_by={orderBy}.
func (c *Client) PageURL(category, name, orderBy string, page int) string {
	if orderBy == "" {
		orderBy = DefaultOrderBy
	}
	query := url.Values{"order_by": {orderBy}}
	return fmt.Sprintf("%s/%s/%s/%d?%s",
		c.cfg.BaseURL,
		url.PathEscape(category),
		url.PathEscape(name),
		page,
		query.Encode(),
	)
}

// FetchPages requests pages 1..pageCount one after another and concatenates
// their records in page order. The first failing page aborts the whole call.
func (c *Client) FetchPages(ctx context.Context, category, name, orderBy string, pageCount int) ([]Record, error) {
	if pageCount < 1 {
		pageCount = 1
	}

	records := make([]Record, 0)
	for page := 1; page <= pageCount; page++ {
		pageRecords, err := c.FetchPage(ctx, category, name, orderBy, page)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
	}

	return records, nil
}

// FetchPage requests a single listing page and extracts its records.
func (c *Client) FetchPage(parentCtx context.Context, category, name, orderBy string, page int) ([]Record, error) {
	start := time.Now()
	pageURL := c.PageURL(category, name, orderBy, page)

	// The timeout covers the request and reading the body.
	ctx, cancel := context.WithTimeout(parentCtx, c.cfg.Timeout)
	defer cancel()

	doOnce := func(ctx context.Context) (*http.Response, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, fmt.Errorf("catalog: build HTTP request: %w", err)
		}
		// An explicitly empty User-Agent makes net/http omit the header,
		// so the catalog cannot tailor the listing to the caller.
		httpReq.Header.Set("User-Agent", "")
		httpReq.Header.Set("Accept", "text/html")
		return c.httpClient.Do(httpReq)
	}

	resp, err := c.doWithRetry(ctx, doOnce)
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: page %d of %s/%s: %w", ErrUpstream, page, category, name, err)
	}
	defer resp.Body.Close()

	metrics.CatalogRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			URL:        pageURL,
			Body:       truncate(strings.TrimSpace(string(body)), 200),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxPageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read page %d of %s/%s: %w", ErrUpstream, page, category, name, err)
	}
	// A cut-off page would yield a truncated last row.
	if int64(len(body)) > c.cfg.MaxPageBytes {
		return nil, fmt.Errorf("%w: page %d of %s/%s exceeds %d bytes", ErrUpstream, page, category, name, c.cfg.MaxPageBytes)
	}

	records, err := ExtractFrom(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse page %d of %s/%s: %w", ErrUpstream, page, category, name, err)
	}

	duration := time.Since(start)
	metrics.CatalogRequestDuration.Observe(duration.Seconds())

	c.logger.Debug("catalog page fetched",
		zap.String("category", category),
		zap.String("name", name),
		zap.String("order_by", orderBy),
		zap.Int("page", page),
		zap.Int("records", len(records)),
		zap.Duration("duration", duration),
	)

	return records, nil
}

// truncate limits string length for error messages
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
