package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/fwojciec/autorace"
	"github.com/fwojciec/autorace/mock"
	autoraceslog "github.com/fwojciec/autorace/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var digestPattern = regexp.MustCompile(`digest=([0-9a-f]+)`)

func regexpDigest(t *testing.T, output string) string {
	t.Helper()
	m := digestPattern.FindStringSubmatch(output)
	require.NotNil(t, m, "no digest in %q", output)
	return m[1]
}

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	key := autorace.RaceKey{Date: "20250801", Circuit: 2, Number: 1}

	t.Run("logs race and rider count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RaceScraper{
			ScrapeFn: func(ctx context.Context, key autorace.RaceKey) (*autorace.Race, error) {
				return &autorace.Race{Key: key, Riders: make([]autorace.Rider, 5)}, nil
			},
		}

		race, err := autoraceslog.NewLoggingScraper(inner, logger).Scrape(context.Background(), key)

		require.NoError(t, err)
		assert.Len(t, race.Riders, 5)
		output := buf.String()
		assert.Contains(t, output, "msg=scrape")
		assert.Contains(t, output, "race=20250801/2/1")
		assert.Contains(t, output, "riders=5")
		assert.Regexp(t, `scrape_id=[0-9a-f-]{36}`, output)
	})

	t.Run("passes scrape id to inner scraper", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var innerID string
		inner := &mock.RaceScraper{
			ScrapeFn: func(ctx context.Context, key autorace.RaceKey) (*autorace.Race, error) {
				innerID, _ = autoraceslog.ScrapeIDFromContext(ctx)
				return &autorace.Race{}, nil
			},
		}

		_, err := autoraceslog.NewLoggingScraper(inner, logger).Scrape(context.Background(), key)

		require.NoError(t, err)
		require.NotEmpty(t, innerID)
		assert.Contains(t, buf.String(), "scrape_id="+innerID)
	})

	t.Run("logs error with zero riders", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RaceScraper{
			ScrapeFn: func(ctx context.Context, key autorace.RaceKey) (*autorace.Race, error) {
				return nil, autorace.Errorf(autorace.ENOTFOUND, "HTTP 404")
			},
		}

		_, err := autoraceslog.NewLoggingScraper(inner, logger).Scrape(context.Background(), key)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "riders=0")
		assert.Contains(t, output, `err="HTTP 404"`)
	})
}
