package konig

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/konig/bipartite"
	"github.com/katalvlaran/konig/cover"
	"github.com/katalvlaran/konig/matching"
)

// Solve computes a maximum matching of g and the minimum vertex cover
// derived from it.
// Returns ErrGraphNil, a matching option error, the context error on
// cancellation, or an error wrapping ErrVerification.
func Solve(ctx context.Context, g *bipartite.Graph, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.WithFields(logrus.Fields{
		"left":  g.LeftCount(),
		"right": g.RightCount(),
		"edges": g.EdgeCount(),
	})

	mr, err := matching.HopcroftKarp(g,
		matching.WithContext(ctx),
		matching.WithOrder(o.Order),
		matching.WithGreedySeed(o.GreedySeed),
		matching.WithOnPhase(func(ps matching.PhaseStats) {
			log.WithFields(logrus.Fields{
				"phase":     ps.Phase,
				"depth":     ps.Depth,
				"freeRight": ps.FreeRight,
				"augmented": ps.Augmented,
				"size":      ps.MatchingSize,
			}).Debug("augmenting phase")
		}),
	)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"seeded":        mr.Seeded,
		"phases":        mr.Phases,
		"augmentations": mr.Augmentations,
		"size":          mr.Size(),
	}).Debug("maximum matching found")

	cr, err := cover.Derive(ctx, g, mr.Matching, mr.IndependentLeft)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"reachable": cr.Reachable.Len(),
		"cover":     cr.Size(),
	}).Debug("cover derived")

	sol := &Solution{
		Matching:         mr.Matching,
		IndependentLeft:  mr.IndependentLeft,
		IndependentRight: mr.IndependentRight,
		Neighbors:        cr.Neighbors,
		Reachable:        cr.Reachable,
		Order:            cr.Order,
		Cover:            cr.Cover,
		Seeded:           mr.Seeded,
		Phases:           mr.Phases,
		Augmentations:    mr.Augmentations,
	}
	if o.Verify {
		if err := verify(ctx, g, sol); err != nil {
			return nil, err
		}
		sol.Verified = true
		log.Debug("solution verified")
	}

	return sol, nil
}

// verify checks matching validity, cover validity and the flow size.
func verify(ctx context.Context, g *bipartite.Graph, sol *Solution) error {
	if err := sol.Matching.Validate(g); err != nil {
		return fmt.Errorf("%w: %w", ErrVerification, err)
	}
	if err := cover.Verify(g, sol.Matching, sol.Cover); err != nil {
		return fmt.Errorf("%w: %w", ErrVerification, err)
	}
	want, err := matching.FlowSize(ctx, g)
	if err != nil {
		return err
	}
	if want != sol.Matching.Size() {
		return fmt.Errorf("%w: matching size %d, max flow %d", ErrVerification, sol.Matching.Size(), want)
	}

	return nil
}
