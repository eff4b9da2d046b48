package yaml_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/autorace"
	autoraceyaml "github.com/fwojciec/autorace/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalRace(t *testing.T) {
	t.Parallel()

	race := &autorace.Race{
		Key:     autorace.RaceKey{Date: "20250801", Circuit: 2, Number: 1},
		Title:   autorace.Some("第1R 予選"),
		Weather: autorace.Some("晴"),
		Riders: []autorace.Rider{
			{Number: 3, Name: "荒尾 聡", Handicap: autorace.Some(0), Points: autorace.Some(98.76)},
		},
	}

	data, err := autoraceyaml.MarshalRace(race)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, "第1R 予選", got["title"])
	assert.Equal(t, "晴", got["weather"])
	assert.Nil(t, got["subtitle"])
	assert.Contains(t, string(data), "subtitle: null")
	assert.NotContains(t, string(data), "sourceUrl")

	key := got["key"].(map[string]any)
	assert.Equal(t, "20250801", key["date"])
	assert.Equal(t, 2, key["circuit"])

	riders := got["riders"].([]any)
	require.Len(t, riders, 1)
	rider := riders[0].(map[string]any)
	assert.Equal(t, 3, rider["number"])
	assert.Equal(t, "荒尾 聡", rider["name"])
	assert.Equal(t, 0, rider["handicap"])
	assert.Equal(t, 98.76, rider["points"])
	assert.Nil(t, rider["trialTime"])
}

func TestEncode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := autoraceyaml.Encode(&buf, []*autorace.Race{
		{Title: autorace.Some("第1R")},
		{Title: autorace.Some("第2R")},
	})
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "第2R", got[1]["title"])
}
