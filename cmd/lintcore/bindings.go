package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lintcore/internal/diagfmt"
	"lintcore/internal/estree"
	"lintcore/internal/resolve"
	"lintcore/internal/source"
	"lintcore/internal/trace"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings <tree.json|tree.msgpack>",
	Short: "Dump every declaring identifier with its scope mark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		traceSess, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		defer traceSess.Close(cmd)

		validate, err := cmd.Flags().GetBool("validate")
		if err != nil {
			return fmt.Errorf("failed to get validate flag: %w", err)
		}

		ctx, span := trace.BeginCtx(cmd.Context(), trace.ScopeDriver, "bindings")
		defer span.End(args[0])

		fs := source.NewFileSet()
		doc, err := estree.Load(fs, args[0], estree.EncodingAuto)
		if err != nil {
			traceSess.dumpOnError(cmd)
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		_, resolveSpan := trace.BeginCtx(ctx, trace.ScopePass, "resolve")
		res := resolve.Program(doc.Tree)
		resolveSpan.End(fmt.Sprintf("scopes=%d unresolved=%d", res.Table.Scopes.Len(), res.Unresolved))

		if validate {
			if err := res.Table.Validate(doc.Tree.Idents); err != nil {
				return fmt.Errorf("resolver invariants: %w", err)
			}
		}
		return diagfmt.Bindings(cmd.OutOrStdout(), doc.Tree, res, fs)
	},
}

func init() {
	bindingsCmd.Flags().Bool("validate", false, "check scope-table invariants before printing")
}
