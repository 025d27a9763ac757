package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/gfycat-go/gfycat"
)

func strPtr(s string) *string { return &s }

func testItems() []*gfycat.MediaItem {
	size := int64(4_000_000)
	return []*gfycat.MediaItem{
		{
			GfyID:      "cat",
			Title:      "Cat jumps",
			Tags:       []string{"Cats", "funny"},
			NSFW:       "0",
			Published:  1,
			Views:      5000,
			Width:      1280,
			Height:     720,
			FrameRate:  30,
			NumFrames:  300,
			GifSize:    &size,
			Subreddit:  strPtr("aww"),
			CreateDate: time.Now().AddDate(0, 0, -3).Unix(),
		},
		{
			GfyID:      "dog",
			Title:      "Dog sleeps",
			Tags:       []string{"dogs"},
			NSFW:       "0",
			Views:      12,
			Width:      320,
			Height:     240,
			FrameRate:  24,
			NumFrames:  48,
			CreateDate: time.Now().AddDate(-1, 0, 0).Unix(),
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: `Views > 100`},
		{name: "helper call", expression: `hasTag("cats") && !NSFW`},
		{name: "string helper", expression: `containsFold(Title, "cat")`},
		{name: "builtin contains operator", expression: `Title contains "cat"`},
		{name: "item field", expression: `Item.AvgColor == ""`},
		{name: "empty", expression: "   ", wantErr: true},
		{name: "syntax error", expression: `Views >`, wantErr: true},
		{name: "not boolean", expression: `Views + 1`, wantErr: true},
		{name: "unknown variable", expression: `Rating > 3`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestCompileCachesPrograms(t *testing.T) {
	first, err := Compile(`Width >= 1280`)
	require.NoError(t, err)
	second, err := Compile(`Width >= 1280`)
	require.NoError(t, err)
	assert.Same(t, first.program, second.program)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{name: "views", expression: `Views > 100`, want: []string{"cat"}},
		{name: "tag ignores case", expression: `hasTag("CATS")`, want: []string{"cat"}},
		{name: "published", expression: `Published`, want: []string{"cat"}},
		{name: "duration", expression: `Duration > 5`, want: []string{"cat"}},
		{name: "recent", expression: `daysSince(Created) < 30`, want: []string{"cat"}},
		{name: "optional absent", expression: `Subreddit == "" && GifSize == 0`, want: []string{"dog"}},
		{name: "contains ignores case", expression: `containsFold(Title, "CAT")`, want: []string{"cat"}},
		{name: "contains operator is exact", expression: `Title contains "cat"`, want: nil},
		{name: "prefix ignores case", expression: `startsWithFold(Title, "dog")`, want: []string{"dog"}},
		{name: "suffix ignores case", expression: `endsWithFold(Title, "JUMPS")`, want: []string{"cat"}},
		{name: "everything", expression: `true`, want: []string{"cat", "dog"}},
		{name: "nothing", expression: `false`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Select(testItems())
			require.NoError(t, err)

			var ids []string
			for _, item := range matched {
				ids = append(ids, item.GfyID)
			}
			if len(tt.want) == 0 {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEvaluateRuntimeError(t *testing.T) {
	f, err := Compile(`Tags[5] == "x"`)
	require.NoError(t, err)

	_, err = f.Evaluate(testItems()[1])
	require.Error(t, err)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "dog", evalErr.GfyID)
}

func TestLRUCache(t *testing.T) {
	c := newLRUCache[int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", 3)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
