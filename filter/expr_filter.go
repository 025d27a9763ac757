package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/gfycat-go/gfycat"
)

// programs caches compiled expressions by source text.
var programs = newLRUCache[*vm.Program](100)

// ExprFilter represents a compiled expr filter over gfycat media items
type ExprFilter struct {
	program *vm.Program
	expr    string
}

// Compile compiles an expr filter expression. The expression must evaluate to a boolean.
//
// Available variables: ID, Title, Description, Username, Tags, NSFW, Published,
// Views, Likes, Dislikes, Width, Height, FrameRate, NumFrames, Duration (seconds),
// MP4Size, WebmSize, GifSize (0 when unknown), Subreddit ("" when unknown),
// Created, and Item for the full record.
//
// Helpers: hasTag, containsFold, startsWithFold, endsWithFold, lower, upper,
// daysSince, daysAgo, now. The built-in contains, startsWith and endsWith
// operators stay available and are case-sensitive, e.g. Title contains "cat".
func Compile(expression string) (*ExprFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Err: fmt.Errorf("empty filter expression")}
	}

	if program, ok := programs.Get(expression); ok {
		return &ExprFilter{program: program, expr: expression}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnv(&gfycat.MediaItem{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Err: err}
	}
	programs.Put(expression, program)

	return &ExprFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate evaluates the filter against a media item
func (f *ExprFilter) Evaluate(item *gfycat.MediaItem) (bool, error) {
	result, err := expr.Run(f.program, newEnv(item))
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, GfyID: item.GfyID, Err: err}
	}

	match, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expr, GfyID: item.GfyID, Err: fmt.Errorf("result is %T, not bool", result)}
	}
	return match, nil
}

// Select returns the items the filter matches, in input order.
func (f *ExprFilter) Select(items []*gfycat.MediaItem) ([]*gfycat.MediaItem, error) {
	var matched []*gfycat.MediaItem
	for _, item := range items {
		ok, err := f.Evaluate(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// String returns the expression source
func (f *ExprFilter) String() string {
	return f.expr
}

// newEnv builds the evaluation environment for item. Compile uses it with a
// zero item so the compiled program sees the same names and types.
func newEnv(item *gfycat.MediaItem) map[string]any {
	var gifSize int64
	if item.GifSize != nil {
		gifSize = *item.GifSize
	}
	var subreddit string
	if item.Subreddit != nil {
		subreddit = *item.Subreddit
	}

	return map[string]any{
		"Item": *item,

		"ID":          item.GfyID,
		"Title":       item.Title,
		"Description": item.Description,
		"Username":    item.Username,
		"Tags":        item.Tags,
		"NSFW":        item.IsNSFW(),
		"Published":   item.IsPublished(),
		"Views":       item.Views,
		"Likes":       item.Likes,
		"Dislikes":    item.Dislikes,
		"Width":       item.Width,
		"Height":      item.Height,
		"FrameRate":   item.FrameRate,
		"NumFrames":   item.NumFrames,
		"Duration":    item.Duration().Seconds(),
		"MP4Size":     item.MP4Size,
		"WebmSize":    item.WebmSize,
		"GifSize":     gifSize,
		"Subreddit":   subreddit,
		"Created":     item.CreatedAt(),

		"hasTag": func(tag string) bool {
			return item.HasTag(tag)
		},

		// Case-insensitive string helpers
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWithFold": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWithFold": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"now": time.Now,
	}
}
