// Command atomtable-demo is a small CLI over an atomspace.AtomTable,
// exercising add/query/extract against an optional SQLite-backed store.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opencog/atomtable/atomspace"
	"github.com/opencog/atomtable/persist"
)

var (
	dbPath  string
	verbose bool

	logger *zap.Logger
	table  *atomspace.AtomTable
	store  persist.Store

	conceptType atomspace.Type
	listType    atomspace.Type
)

var rootCmd = &cobra.Command{
	Use:   "atomtable-demo",
	Short: "Exercise an in-memory hypergraph AtomTable from the command line",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			zl, zerr := atomspace.NewZapLogger(true)
			if zerr != nil {
				return zerr
			}
			table = atomspace.New(atomspace.WithLogger(zl), atomspace.WithStatistics(atomspace.NewCountingStatistics()))
		} else {
			table = atomspace.New(atomspace.WithStatistics(atomspace.NewCountingStatistics()))
		}
		conceptType = table.Types().Register("CONCEPT", atomspace.NODE)
		listType = table.Types().Register("LIST", atomspace.LINK)

		if dbPath != "" {
			store, err = persist.OpenSQLiteStore(dbPath)
			if err != nil {
				return err
			}
			atoms, err := store.LoadAll(context.Background())
			if err != nil {
				return err
			}
			for _, a := range atoms {
				if _, err := table.Add(a); err != nil {
					return fmt.Errorf("rehydrate %s: %w", a.Handle, err)
				}
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

var addConceptCmd = &cobra.Command{
	Use:   "add-concept [name]",
	Short: "Add a CONCEPT node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := atomspace.NewNode(conceptType, args[0])
		h, err := table.Add(a)
		if err != nil {
			return err
		}
		if store != nil {
			if err := store.SaveAtom(cmd.Context(), a); err != nil {
				return err
			}
		}
		fmt.Println(h.String())
		return nil
	},
}

var addListCmd = &cobra.Command{
	Use:   "add-list [handle...]",
	Short: "Add a LIST link over the given handles",
	RunE: func(cmd *cobra.Command, args []string) error {
		outgoing := make([]atomspace.Handle, len(args))
		for i, s := range args {
			n, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid handle %q: %w", s, err)
			}
			outgoing[i] = atomspace.Handle(n)
		}
		a := atomspace.NewLink(listType, outgoing)
		h, err := table.Add(a)
		if err != nil {
			return err
		}
		if store != nil {
			if err := store.SaveAtom(cmd.Context(), a); err != nil {
				return err
			}
		}
		fmt.Println(h.String())
		return nil
	},
}

var queryTypeCmd = &cobra.Command{
	Use:   "query-type [name]",
	Short: "List every atom of a registered type (CONCEPT or LIST)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ty, ok := resolveTypeName(args[0])
		if !ok {
			return fmt.Errorf("unknown type %q", args[0])
		}
		for h := range table.GetByType(ty, true) {
			a := table.Resolve(h)
			fmt.Println(a.String())
		}
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [handle]",
	Short: "Remove an atom (recursively) by handle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
		if err != nil {
			return err
		}
		h := atomspace.Handle(n)
		if store != nil {
			if err := store.DeleteAtom(cmd.Context(), h); err != nil {
				return err
			}
		}
		removed := table.Remove(h, true)
		fmt.Printf("removed=%v size=%d\n", removed, table.Size())
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print table size",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("size=%d cleared=%v\n", table.Size(), table.IsCleared())
		return nil
	},
}

func resolveTypeName(name string) (atomspace.Type, bool) {
	switch name {
	case "CONCEPT":
		return conceptType, true
	case "LIST":
		return listType, true
	default:
		return 0, false
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to a SQLite file for persistence (optional)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable development-mode structured logging")
	rootCmd.AddCommand(addConceptCmd, addListCmd, queryTypeCmd, extractCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
