package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

// URLClassifier classifies a single URL.
type URLClassifier interface {
	ClassifyURL(ctx context.Context, rawURL string) (model.URLVerdict, error)
}

// BatchResult is one line of a batch run.
type BatchResult struct {
	URL     string
	Verdict model.URLVerdict
	Error   error
}

// BatchProcessor classifies many URLs concurrently.
type BatchProcessor struct {
	classifier  URLClassifier
	concurrency int
}

func NewBatchProcessor(classifier URLClassifier, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		classifier:  classifier,
		concurrency: concurrency,
	}
}

// ProcessURLs returns one result per URL, in input order.
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []BatchResult {
	verdicts, errs := Map(ctx, b.concurrency, len(urls), func(ctx context.Context, i int) (model.URLVerdict, error) {
		return b.classifier.ClassifyURL(ctx, urls[i])
	})

	results := make([]BatchResult, len(urls))
	for i, u := range urls {
		results[i] = BatchResult{URL: u, Verdict: verdicts[i], Error: errs[i]}
	}
	return results
}

// ProcessFile reads URLs from a file and processes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]BatchResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}

	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file, one per line.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadURLs(file)
}

// ReadURLs reads one URL per line, skipping blanks, # comments and duplicates.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return urls, nil
}
