package prove

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnolang/seqprove/internal/logic"
	"github.com/gnolang/seqprove/internal/oracle"
	"github.com/gnolang/seqprove/internal/reader"
	"github.com/gnolang/seqprove/internal/search"
)

// ClaimExtension marks claim files when a directory is processed.
const ClaimExtension = ".seq"

type Engine interface {
	Prove(filePath string) (Result, error)
	ProveSource(source []byte) (Result, error)
}

// Result is the outcome of proving one claim.
type Result struct {
	Filename string
	Claim    logic.Claim
	Tree     logic.Tree
	Closed   bool
	Stats    search.Stats
	// Classical is set only when the prover runs the classical oracle.
	Classical *oracle.Report
}

// Prover reads claims and searches for derivations.
type Prover struct {
	searcher  *search.Searcher
	classical bool
	logger    *zap.Logger
}

// New builds a Prover from a configuration file.
func New(configurationPath string, logger *zap.Logger) (*Prover, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	return NewProver(config, logger)
}

// NewProver builds a Prover from an already loaded configuration.
func NewProver(config Config, logger *zap.Logger) (*Prover, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	searcher, err := config.Searcher(logger)
	if err != nil {
		return nil, err
	}
	return &Prover{
		searcher:  searcher,
		classical: config.Classical,
		logger:    logger,
	}, nil
}

// SetClassical toggles the classical validity check on results.
func (p *Prover) SetClassical(on bool) {
	p.classical = on
}

// Prove reads the claim in filePath and searches it.
func (p *Prover) Prove(filePath string) (Result, error) {
	claim, err := reader.ReadClaimFile(filePath)
	if err != nil {
		return Result{Filename: filePath}, err
	}
	res := p.ProveClaim(claim)
	res.Filename = filePath
	return res, nil
}

// ProveSource parses source as a claim and searches it.
func (p *Prover) ProveSource(source []byte) (Result, error) {
	claim, err := reader.ParseClaim(strings.TrimRight(string(source), " \t\r\n"))
	if err != nil {
		return Result{}, err
	}
	return p.ProveClaim(claim), nil
}

// ProveClaim searches an already parsed claim.
func (p *Prover) ProveClaim(claim logic.Claim) Result {
	tree := p.searcher.Search(logic.NewOpen(claim))
	res := Result{
		Claim:  claim,
		Tree:   tree,
		Closed: search.IsClosed(tree),
		Stats:  search.Collect(tree),
	}
	if p.classical {
		report := oracle.Check(claim)
		res.Classical = &report
	}
	p.logger.Debug("claim searched",
		zap.Stringer("claim", claim),
		zap.Bool("closed", res.Closed),
		zap.Int("nodes", res.Stats.Nodes),
	)
	return res
}

func ProcessFile(engine Engine, filePath string) (Result, error) {
	return engine.Prove(filePath)
}

func ProcessSource(engine Engine, source []byte) (Result, error) {
	return engine.ProveSource(source)
}

// ProcessFiles runs processor over every path in order. A file path is
// processed directly; a directory contributes its claim files.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	processor func(Engine, string) (Result, error),
) ([]Result, error) {
	var allResults []Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return allResults, err
		}
		allResults = append(allResults, results...)
	}
	return allResults, nil
}

// ProcessPath processes a single file, or every claim file below a
// directory on a bounded worker pool. Directory results are sorted by file
// name. Files that fail to parse are logged, skipped and reported together
// in the returned error.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	processor func(Engine, string) (Result, error),
) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		res, err := processor(engine, path)
		if err != nil {
			return nil, fmt.Errorf("error processing %s: %w", path, err)
		}
		return []Result{res}, nil
	}

	files, err := claimFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	results := make([]*Result, len(files))
	var (
		mu       sync.Mutex
		failures []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, fp := range files {
		i, fp := i, fp
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			defer bar.Add(1)
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				mu.Lock()
				failures = append(failures, fmt.Errorf("%s: %w", fp, err))
				mu.Unlock()
				return nil
			}
			results[i] = &res
			return nil
		})
	}
	waitErr := g.Wait()
	_ = bar.Finish()

	collected := make([]Result, 0, len(files))
	for _, res := range results {
		if res != nil {
			collected = append(collected, *res)
		}
	}
	if waitErr != nil {
		return collected, waitErr
	}
	if err := ctx.Err(); err != nil {
		return collected, err
	}
	return collected, errors.Join(failures...)
}

func claimFiles(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasClaimExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

func hasClaimExtension(path string) bool {
	return filepath.Ext(path) == ClaimExtension
}
