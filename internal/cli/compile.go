package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"syslogng-gen/confgen"
	"syslogng-gen/document"
)

// appendNewlines is the number of line separators written after an
// appended snippet.
const appendNewlines = 2

// newCompileCommand creates the compile command.
func newCompileCommand(flags *globalFlags) *cobra.Command {
	var (
		id    string
		write bool
	)

	cmd := &cobra.Command{
		Use:   "compile FILE",
		Short: "Compile a YAML document into syslog-ng configuration",
		Long: `Compile reads a YAML document whose root is a single-key mapping,
for example:

    source:
      - file:
        - /var/log/messages
        - follow_freq: 1

and emits the corresponding syslog-ng configuration text. With --write
the result is appended to the configuration file instead of printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}

			text, err := confgen.Compile(id, root)
			if err != nil {
				return fmt.Errorf("compiling %s: %w", args[0], err)
			}

			if write {
				return flags.writer().Append(text, appendNewlines)
			}

			cmd.Println(text)

			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "declared identifier of the document")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().BoolVar(&write, "write", false, "append the result to the configuration file instead of printing it")

	return cmd
}
