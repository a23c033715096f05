// Package collector implements the sink end of the pipeline: turning one
// derived oligo into one or two records on disk.
package collector

import (
	"adserr/mutator"
	"adserr/oligo"
	"adserr/rng"
	"adserr/seqio"
)

// Collector applies an optional count-preserving post-chain to each
// oligo it receives and writes the result to the forward writer, and,
// when configured for paired-end output, the reverse complement of the
// original oligo through the same post-chain to the reverse writer.
type Collector struct {
	forward *seqio.Writer
	reverse *seqio.Writer
	post    mutator.Chain
}

// New builds a Collector. reverse may be nil for single-ended output.
func New(forward, reverse *seqio.Writer, post mutator.Chain) *Collector {
	return &Collector{forward: forward, reverse: reverse, post: post}
}

func (c *Collector) applyPost(o oligo.Oligo, r *rng.RNG) oligo.Oligo {
	if len(c.post) == 0 {
		return o
	}
	pool := []oligo.Oligo{o}
	c.post.Run(&pool, r)
	if len(pool) == 0 {
		return oligo.Oligo{}
	}
	return pool[0]
}

// Collect writes o (and, for paired-end output, its reverse complement)
// through the post-chain to the configured writers.
func (c *Collector) Collect(o oligo.Oligo, r *rng.RNG) error {
	if err := c.forward.Write(c.applyPost(o, r)); err != nil {
		return err
	}
	if c.reverse != nil {
		if err := c.reverse.Write(c.applyPost(oligo.ReverseComplement(o), r)); err != nil {
			return err
		}
	}
	return nil
}
