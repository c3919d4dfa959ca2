// Package remark analyzes free-text stakeholder comments from a
// regulatory consultation. One call derives every view: per-comment
// stance classifications, a ranked word-frequency profile, and a
// corpus-level summary. All derived structures are pure functions of the
// input sequence and are recomputed wholesale on every call.
package remark

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/civicsignal/remark/pkg/remark/ingest"
	"github.com/civicsignal/remark/pkg/remark/rank"
	"github.com/civicsignal/remark/pkg/remark/stance"
	"github.com/civicsignal/remark/pkg/remark/store"
	"github.com/civicsignal/remark/pkg/remark/summary"
)

// Analysis bundles the derived views for one comment corpus. Comments
// echoes the input for display. Summary is nil for an empty corpus.
type Analysis struct {
	RunID           string               `json:"run_id,omitempty"`
	Comments        []string             `json:"comments"`
	Classifications []stance.Result      `json:"classifications"`
	Frequencies     []rank.WordFrequency `json:"frequencies"`
	Summary         *summary.Summary     `json:"summary"`
}

// Options configures an Engine. Nil components get defaults; a nil Store
// disables archiving.
type Options struct {
	Tokenizer  *ingest.Tokenizer
	Classifier *stance.Classifier
	Summarizer *summary.Summarizer
	Store      store.Store
}

// Engine is the analysis facade.
type Engine struct {
	tokenizer  *ingest.Tokenizer
	classifier *stance.Classifier
	summarizer *summary.Summarizer
	store      store.Store
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	if opts.Tokenizer == nil {
		opts.Tokenizer = ingest.NewTokenizer(nil)
	}
	if opts.Classifier == nil {
		opts.Classifier = stance.NewClassifier(nil, nil)
	}
	if opts.Summarizer == nil {
		opts.Summarizer = summary.NewSummarizer()
	}
	return &Engine{
		tokenizer:  opts.Tokenizer,
		classifier: opts.Classifier,
		summarizer: opts.Summarizer,
		store:      opts.Store,
	}
}

// Close shuts down the archive store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Analyze recomputes every derived view from the comment sequence. The
// three computations share no state, so they run as independent tasks
// joined before return. An empty input yields empty views, never an
// error; the only error surface is archiving.
func (e *Engine) Analyze(ctx context.Context, comments []string) (Analysis, error) {
	analysis := Analysis{Comments: comments}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		analysis.Classifications = e.classifier.ClassifyAll(comments)
	}()
	go func() {
		defer wg.Done()
		corpus := strings.Join(comments, "\n")
		analysis.Frequencies = rank.Top(e.tokenizer.Tokenize(corpus))
	}()
	go func() {
		defer wg.Done()
		analysis.Summary = e.summarizer.Summarize(comments)
	}()

	wg.Wait()

	if e.store != nil {
		if err := e.archive(ctx, &analysis); err != nil {
			return analysis, fmt.Errorf("archive run: %w", err)
		}
	}

	return analysis, nil
}

func (e *Engine) archive(ctx context.Context, analysis *Analysis) error {
	analysis.RunID = store.NewRunID()

	payload, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	return e.store.SaveRun(ctx, store.Run{
		ID:           analysis.RunID,
		CreatedAt:    time.Now().UTC(),
		CommentCount: len(analysis.Comments),
		Payload:      payload,
	})
}
