package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
glad-docmd synthesizes Doxygen docblocks for GLAD loader headers. It cross-
references the Khronos API registry (gl.xml) with the DocBook reference pages
and inserts one generated comment block above every alias macro of the form

  #define glBindBuffer glad_glBindBuffer

Each block carries the function's purpose, per-parameter types and prose
(including the registry's group/len metadata), the return type, a link to the
public refpage, and a note recording the core version and/or extensions that
introduced the command. Re-running the tool on its own output replaces the
generated blocks in place, so headers can be refreshed whenever the registry
or the refpages change.

Typical invocation:

  glad-docmd --in include/glad/gl.h --xml gl.xml --refpages ref/gl4 --out gl_doc.h
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "glad-docmd [flags]",
		Short:         "Insert Doxygen docblocks above GLAD alias macros",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&app.opts.inPath, "in", "", "path to the GLAD loader header to annotate")
	flags.StringVar(&app.opts.xmlPath, "xml", "", "path to the API registry document (gl.xml)")
	flags.StringVar(&app.opts.refDir, "refpages", "", "directory of DocBook refpages (one <function>.xml per command)")
	flags.StringVar(&app.opts.outPath, "out", "", "path to write the annotated header to (- for stdout)")
	flags.StringVar(&app.opts.api, "api", "", "registry api to read feature versions from (default \"gl\")")
	flags.StringVarP(&app.opts.configPath, "config", "c", "", "YAML run configuration supplying defaults for the flags above")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute()
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for glad-docmd.

The output should be evaluated by your shell. For example:

  # bash
  glad-docmd completion bash > /usr/local/etc/bash_completion.d/glad-docmd

  # zsh
  glad-docmd completion zsh > "${fpath[1]}/_glad-docmd"

  # fish
  glad-docmd completion fish | source

  # PowerShell
  glad-docmd completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  glad-docmd gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
