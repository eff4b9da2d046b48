package main_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/autorace"
	main "github.com/fwojciec/autorace/cmd/autorace"
	"github.com/fwojciec/autorace/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRace(key autorace.RaceKey) *autorace.Race {
	return &autorace.Race{
		Key:            key,
		Title:          autorace.Some("第1R 予選"),
		TrackCondition: autorace.Some("良走路"),
		Riders: []autorace.Rider{
			{Number: 1, Name: "青山 周平", Handicap: autorace.Some(10)},
			{Number: 3, Name: "荒尾 聡", Points: autorace.Some(98.76)},
		},
	}
}

func newScraper() *mock.RaceScraper {
	return &mock.RaceScraper{
		ScrapeFn: func(ctx context.Context, key autorace.RaceKey) (*autorace.Race, error) {
			return newRace(key), nil
		},
	}
}

func TestRaceCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints text by default", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: newScraper(),
		}

		cmd := &main.RaceCmd{Date: "20250801", Circuit: 2, Number: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "第1R 予選")
		assert.Contains(t, stdout.String(), "Track Condition: 良走路")
		assert.Contains(t, stdout.String(), "3. 荒尾 聡")
	})

	t.Run("writes one csv row per rider", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: newScraper(),
		}

		cmd := &main.RaceCmd{Date: "2025-08-01", Circuit: 2, Number: 1, Output: main.OutputFlags{Format: "csv"}}
		err := cmd.Run(deps)
		require.NoError(t, err)

		records, err := csv.NewReader(stdout).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"Date", "Circuit", "Race", "Title", "No", "Name"}, records[0][:6])
		assert.Equal(t, []string{"20250801", "2", "1", "第1R 予選", "1", "青山 周平"}, records[1][:6])
		assert.Equal(t, "3", records[2][4])
	})

	t.Run("renders markdown with converter", func(t *testing.T) {
		t.Parallel()

		var converted string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: newScraper(),
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					converted = html
					return "# 第1R 予選", nil
				},
			},
		}

		cmd := &main.RaceCmd{Date: "20250801", Circuit: 2, Number: 1, Output: main.OutputFlags{Format: "markdown"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, converted, "<td>青山 周平</td>")
		assert.Equal(t, "# 第1R 予選\n", stdout.String())
	})

	t.Run("renders yaml", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: newScraper(),
		}

		cmd := &main.RaceCmd{Date: "20250801", Circuit: 2, Number: 1, Output: main.OutputFlags{Format: "yaml"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "title: 第1R 予選")
		assert.Contains(t, stdout.String(), "subtitle: null")
	})

	t.Run("writes output file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "race.html")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: newScraper(),
		}

		cmd := &main.RaceCmd{Date: "20250801", Circuit: 2, Number: 1, Output: main.OutputFlags{Format: "html", Output: path}}
		err := cmd.Run(deps)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<h1>第1R 予選</h1>")
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "Wrote 1 race(s)")
	})

	t.Run("reports scrape error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Scraper: &mock.RaceScraper{
				ScrapeFn: func(ctx context.Context, key autorace.RaceKey) (*autorace.Race, error) {
					return nil, autorace.Errorf(autorace.ENOTFOUND, "HTTP 404 for https://example.com")
				},
			},
		}

		cmd := &main.RaceCmd{Date: "20250801", Circuit: 2, Number: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, autorace.ENOTFOUND, autorace.ErrorCode(err))
		assert.Equal(t, "error: HTTP 404 for https://example.com\n", stderr.String())
	})
}
