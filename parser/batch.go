package parser

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	handhistory "github.com/lox/handhistory"
	"github.com/lox/handhistory/analysis"
)

var (
	// ErrNoHands means the transcript contained no hand blocks at all.
	ErrNoHands = errors.New("no hand histories found")
	// ErrNoValidHands means every block was rejected by validation.
	ErrNoValidHands = errors.New("no valid hands found")
	// ErrNoHero means no hero alias was configured and none could be
	// detected from the transcript.
	ErrNoHero = errors.New("could not detect hero alias")
)

// Options adjusts batch parsing. The zero value is usable: hero
// auto-detection, sequential parsing and a no-op logger.
type Options struct {
	// HeroAlias is the player to treat as Hero. For PokerStars input it
	// is auto-detected from the first "Dealt to" line when empty.
	HeroAlias string
	// Workers bounds the parallel parse. Values below 2 parse
	// sequentially; 0 is sequential, negative values use GOMAXPROCS.
	Workers int
	// Logger receives per-hand skip diagnostics.
	Logger zerolog.Logger
}

func (o *Options) logger() zerolog.Logger {
	if o == nil {
		return zerolog.Nop()
	}
	return o.Logger
}

func (o *Options) workers() int {
	if o == nil {
		return 1
	}
	if o.Workers < 0 {
		return runtime.GOMAXPROCS(0)
	}
	if o.Workers == 0 {
		return 1
	}
	return o.Workers
}

// Result is the outcome of a batch parse: the hands that survived, plus
// an account of what was dropped and why.
type Result struct {
	Hands       []*handhistory.HandHistory
	Skipped     int
	SkipReasons []string
}

// Parse splits a raw transcript into hands, validates and parses each,
// and derives the analytic layers. Invalid hands are skipped, not fatal;
// only an empty transcript or a fully rejected batch errors.
func Parse(raw string, site Site, opts *Options) (*Result, error) {
	log := opts.logger()

	alias := ""
	if opts != nil {
		alias = opts.HeroAlias
	}
	if site == SitePokerStars && alias == "" {
		detected, ok := DetectHeroAlias(raw)
		if !ok {
			return nil, ErrNoHero
		}
		alias = detected
		log.Debug().Str("alias", alias).Msg("detected hero alias")
	}

	d := newDialect(site, alias)
	blocks := d.SplitHands(raw)
	if len(blocks) == 0 {
		return nil, ErrNoHands
	}

	var res *Result
	if opts.workers() > 1 {
		res = parseParallel(d, blocks, opts.workers(), log)
	} else {
		res = parseSequential(d, blocks, log)
	}
	if len(res.Hands) == 0 {
		return nil, fmt.Errorf("%w: %d hands skipped", ErrNoValidHands, res.Skipped)
	}
	return res, nil
}

func parseSequential(d Dialect, blocks []string, log zerolog.Logger) *Result {
	res := &Result{Hands: make([]*handhistory.HandHistory, 0, len(blocks))}
	for i, block := range blocks {
		h, err := parseHand(d, block)
		if err != nil {
			res.Skipped++
			res.SkipReasons = append(res.SkipReasons, err.Error())
			log.Debug().Int("hand", i).Err(err).Msg("skipping hand")
			continue
		}
		res.Hands = append(res.Hands, h)
	}
	return res
}

// parseParallel fans the blocks over a bounded worker pool and collects
// results by index, so hand order matches transcript order.
func parseParallel(d Dialect, blocks []string, workers int, log zerolog.Logger) *Result {
	type slot struct {
		hand *handhistory.HandHistory
		err  error
	}
	slots := make([]slot, len(blocks))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, block := range blocks {
		i, block := i, block
		g.Go(func() error {
			h, err := parseHand(d, block)
			slots[i] = slot{hand: h, err: err}
			return nil
		})
	}
	// Workers never return errors; per-hand failures land in their slot.
	_ = g.Wait()

	res := &Result{Hands: make([]*handhistory.HandHistory, 0, len(blocks))}
	for i, s := range slots {
		if s.err != nil {
			res.Skipped++
			res.SkipReasons = append(res.SkipReasons, s.err.Error())
			log.Debug().Int("hand", i).Err(s.err).Msg("skipping hand")
			continue
		}
		res.Hands = append(res.Hands, s.hand)
	}
	return res
}

// parseHand runs the full per-hand pipeline: validation, the five section
// parsers, then the derived analytics.
func parseHand(d Dialect, block string) (*handhistory.HandHistory, error) {
	if err := d.Validate(block); err != nil {
		return nil, err
	}
	h := &handhistory.HandHistory{RawHand: block}
	d.ParseHeader(block, h)
	h.Seats = d.ParseSeats(block)
	if h.Hero() == nil {
		return nil, fmt.Errorf("hero is not seated")
	}
	h.HeroCard1, h.HeroCard2 = d.ParseHoleCards(block)
	d.ParseBoard(block, h)
	d.ParseActions(block, h)
	d.ParseSummary(block, h)
	analysis.Derive(h)
	return h, nil
}
