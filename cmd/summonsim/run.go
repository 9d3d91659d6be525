package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/udisondev/cavesummon/internal/model"
	"github.com/udisondev/cavesummon/internal/summon"
)

type runOptions struct {
	typeName string
	level    int
	count    int
	call     bool
	delay    bool
}

func runCmd(a *app) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fire summons at the player and report what arrives",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSummons(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.typeName, "type", summon.KindKin, "Summon type name")
	cmd.Flags().IntVar(&opts.level, "level", 0, "Summoner power (0 = caster's race level)")
	cmd.Flags().IntVar(&opts.count, "count", 10, "Number of summons to fire")
	cmd.Flags().BoolVar(&opts.call, "call", false, "Call existing monsters instead of conjuring")
	cmd.Flags().BoolVar(&opts.delay, "delay", false, "Hold summoned monsters so the player acts first")
	return cmd
}

func (a *app) runSummons(cmd *cobra.Command, opts runOptions) error {
	if opts.count < 0 || opts.level < 0 {
		return errors.New("count and level must not be negative")
	}

	cat, err := a.loadCatalog(cmd.Context())
	if err != nil {
		return err
	}
	s, err := newSim(a.cfg, cat)
	if err != nil {
		return err
	}
	typ, err := s.lookupType(opts.typeName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d, depth %d, player at %v\n", s.seed, s.player.Depth(), s.player.Grid())

	var succeeded, called int
	for i := range opts.count {
		req := summon.Request{
			Grid:  s.player.Grid(),
			Level: opts.level,
			Type:  typ,
			Delay: opts.delay,
			Call:  opts.call,
		}

		// A random monster on the level casts the summon
		caster := s.randomMonster()
		if caster != nil {
			s.level.SetCurrentMonster(caster.Index())
			req.KinBase = caster.Race().Base()
			if req.Level == 0 {
				req.Level = caster.Level()
			}
		}

		res, used, ok := s.summonWithFallback(req)
		s.level.SetCurrentMonster(0)

		if !ok {
			fmt.Fprintf(out, "%3d %-10s nothing answers\n", i+1, opts.typeName)
			continue
		}
		succeeded++
		if res.Called {
			called++
		}
		printSummon(out, i+1, s.reg.Type(used), caster, res)
	}

	fmt.Fprintf(out, "%d/%d summons succeeded (%d called), %d monsters on level\n",
		succeeded, opts.count, called, s.level.MonsterCount())
	return nil
}

// summonWithFallback tries req.Type and, if nothing answers, its fallback
// type once. Returns the type index that succeeded.
func (s *sim) summonWithFallback(req summon.Request) (summon.Result, int, bool) {
	if res, ok := s.summoner.Specific(req); ok {
		return res, req.Type, true
	}

	fallback := s.reg.Fallback(req.Type)
	if fallback == summon.None {
		return summon.Result{}, summon.None, false
	}
	req.Type = fallback
	res, ok := s.summoner.Specific(req)
	return res, fallback, ok
}

func printSummon(out io.Writer, n int, typ *summon.Type, caster *model.Monster, res summon.Result) {
	verb := "conjured"
	if res.Called {
		verb = "called"
	}
	by := "the level"
	if caster != nil {
		by = caster.Race().Name()
	}

	mon := res.Monster
	fmt.Fprintf(out, "%3d %-10s %-14s %s %s (lvl %d) at %v for %s",
		n, typ.Name(), typ.MessageType(), verb, mon.Race().Name(), res.Level, mon.Grid(), by)
	if held := mon.Timed(model.TimedHold); held > 0 {
		fmt.Fprintf(out, ", held %d", held)
	}
	fmt.Fprintln(out)
}
