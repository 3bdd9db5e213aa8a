package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/domino14/upperhold/dice"
	"github.com/domino14/upperhold/equity"
	"github.com/domino14/upperhold/strategy"
)

func exampleResult(t *testing.T) strategy.Result {
	res, err := strategy.Strategy(dice.NewHand(1, 1, 1, 5, 6), 6)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestText(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(Write(&buf, exampleResult(t), "text"))
	is.Equal(buf.String(),
		"Best strategy for hand 11156 is to hold 6 (re-roll 1115) with expected score 10.6914\n")
}

func TestTextRanked(t *testing.T) {
	is := is.New(t)
	p := strategy.NewPlanner()
	res, err := p.Rank(t.Context(), dice.NewHand(1, 1, 1, 5, 6), 6)
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(Write(&buf, res, "text"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// headline, blank, header, 16 holds
	is.Equal(len(lines), 19)
	is.True(strings.HasPrefix(lines[3], "6 "))
}

func TestJSON(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(Write(&buf, exampleResult(t), "json"))
	var back map[string]any
	is.NoErr(json.Unmarshal(buf.Bytes(), &back))
	is.Equal(back["hold"], []any{6.0})
	is.Equal(back["sides"], 6.0)
	is.Equal(back["expected_value"], 13856.0/1296)
}

func TestYAML(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(Write(&buf, exampleResult(t), "yaml"))
	var back struct {
		Hand []int   `yaml:"hand"`
		Hold []int   `yaml:"hold"`
		EV   float64 `yaml:"expected_value"`
	}
	is.NoErr(yaml.Unmarshal(buf.Bytes(), &back))
	is.Equal(back.Hand, []int{1, 1, 1, 5, 6})
	is.Equal(back.Hold, []int{6})
	is.Equal(back.EV, 13856.0/1296)
}

// shortWriter accepts limit bytes and then fails every write.
type shortWriter struct {
	limit int
}

var errShortWrite = errors.New("writer full")

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errShortWrite
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestWriteErrors(t *testing.T) {
	is := is.New(t)
	p := strategy.NewPlanner()
	res, err := p.Rank(t.Context(), dice.NewHand(1, 1, 1, 5, 6), 6)
	is.NoErr(err)

	// Fails on the headline.
	is.True(errors.Is(Write(&shortWriter{limit: 10}, res, "text"), errShortWrite))
	// Headline fits, the table does not.
	is.True(errors.Is(Write(&shortWriter{limit: 100}, res, "text"), errShortWrite))

	d, err := equity.ScoreDistribution(dice.NewHand(5, 5), 6, 0)
	is.NoErr(err)
	is.True(errors.Is(Histogram(&shortWriter{limit: 0}, d), errShortWrite))
	is.True(errors.Is(Histogram(&shortWriter{limit: 90}, d), errShortWrite))
}

func TestUnknownFormat(t *testing.T) {
	is := is.New(t)
	is.True(Write(&bytes.Buffer{}, exampleResult(t), "xml") != nil)
}

func TestHistogram(t *testing.T) {
	is := is.New(t)
	d, err := equity.ScoreDistribution(dice.NewHand(6), 6, 4)
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(Histogram(&buf, d))
	is.True(strings.HasPrefix(buf.String(), "Scores holding 6 and rolling 4 (1296 sequences"))

	d, err = equity.ScoreDistribution(dice.NewHand(5, 5), 6, 0)
	is.NoErr(err)
	buf.Reset()
	is.NoErr(Histogram(&buf, d))
	is.True(strings.HasSuffix(buf.String(), "range 10-10)\n10: 1\n"))
}
