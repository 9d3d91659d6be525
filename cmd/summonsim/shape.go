package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/cavesummon/internal/model"
)

func shapeCmd(a *app) *cobra.Command {
	var (
		typeName string
		count    int
		raceName string
	)
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Pick shapes a monster could change into",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShape(cmd, typeName, raceName, count)
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "ANIMAL", "Summon type the shape is drawn from")
	cmd.Flags().StringVar(&raceName, "race", "", "Race of the shapechanger (default: a random monster on the level)")
	cmd.Flags().IntVar(&count, "count", 5, "Number of picks")
	return cmd
}

func (a *app) runShape(cmd *cobra.Command, typeName, raceName string, count int) error {
	cat, err := a.loadCatalog(cmd.Context())
	if err != nil {
		return err
	}
	s, err := newSim(a.cfg, cat)
	if err != nil {
		return err
	}
	typ, err := s.lookupType(typeName)
	if err != nil {
		return err
	}

	var mon *model.Monster
	if raceName != "" {
		race := cat.Race(raceName)
		if race == nil {
			return fmt.Errorf("unknown race %q", raceName)
		}
		mon = model.NewMonster(0, race, s.player.Grid(), model.OriginNone)
	} else {
		mon = s.randomMonster()
	}
	if mon == nil {
		return errors.New("no shapechanger: level is empty and --race not given")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s) shapes from %s:\n", mon.Race().Name(), mon.Race().Base().Name(), typeName)
	for i := range count {
		race := s.summoner.SelectShape(mon, typ)
		if race == nil {
			fmt.Fprintf(out, "%3d none\n", i+1)
			continue
		}
		fmt.Fprintf(out, "%3d %s (lvl %d, %s)\n", i+1, race.Name(), race.Level(), race.Base().Name())
	}
	return nil
}
