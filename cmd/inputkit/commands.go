package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gobeaver/inputkit"
	"github.com/gobeaver/inputkit/filevalidator"
	"github.com/gobeaver/inputkit/internal/logger"
	"github.com/gobeaver/inputkit/upload"
	"github.com/gobeaver/inputkit/urlvalidator"
	"github.com/gobeaver/inputkit/uuidvalidator"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errRejected signals that the input was checked and refused. main turns it
// into exit status 2 without printing anything more.
var errRejected = errors.New("input rejected")

// app holds what every command needs once the configuration is loaded
type app struct {
	kit   *inputkit.Toolkit
	store *upload.Store
}

func newRootCommand() *cobra.Command {
	var (
		namespace string
		a         app
	)

	cmd := &cobra.Command{
		Use:   "inputkit",
		Short: "Validate files, URLs and version-5 UUIDs",
		Long: `inputkit checks untrusted input before it is accepted.

Run without a subcommand to start the interactive upload tool. Settings are read
from BEAVER_INPUTKIT_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := inputkit.GetConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if namespace != "" {
				cfg.Namespace = namespace
			}

			kit, err := inputkit.New(cfg)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Environment)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			a.kit = kit
			a.store = upload.New(upload.Config{
				Namespace:      kit.Namespace(),
				CheckExtension: cfg.CheckExtension,
				MaxSize:        cfg.MaxFileSize,
				URLBase:        cfg.URLBase,
			})
			cmd.SetContext(logger.WithLogger(cmd.Context(), log))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := newMenu(a.store, a.kit, cmd.InOrStdin(), cmd.OutOrStdout())
			return m.run(cmd.Context())
		},
	}
	cmd.PersistentFlags().StringVar(&namespace, "namespace", "", "Namespace UUID for derivation (overrides BEAVER_INPUTKIT_NAMESPACE)")

	cmd.AddCommand(
		newFileCmd(&a),
		newURLCmd(&a),
		newUUIDCmd(),
		newDeriveCmd(&a),
		newBindCmd(&a),
	)
	return cmd
}

func newFileCmd(a *app) *cobra.Command {
	var checkExtension bool
	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Classify a file as image, video or invalid from its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check := a.kit.CheckExtension()
			if cmd.Flags().Changed("check-extension") {
				check = checkExtension
			}

			kind, err := filevalidator.ValidateFile(args[0], check)
			if err != nil {
				logger.Get(cmd.Context()).Debug("file validation failed",
					zap.String("path", args[0]), zap.Error(err))
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), kind)
			if kind == filevalidator.Invalid {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkExtension, "check-extension", true, "Require the file name to carry the extension of its content")
	return cmd
}

func newURLCmd(a *app) *cobra.Command {
	var tlds []string
	cmd := &cobra.Command{
		Use:   "url <url>",
		Short: "Check the syntax of a URL, optionally against a TLD whitelist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ok bool
			if cmd.Flags().Changed("tld") {
				var err error
				if ok, err = urlvalidator.ValidateURLWithWhitelist(args[0], tlds); err != nil {
					return err
				}
			} else {
				ok = a.kit.ValidateURL(args[0])
			}
			return report(cmd, ok)
		},
	}
	cmd.Flags().StringSliceVar(&tlds, "tld", nil, "Whitelisted top-level domain, e.g. --tld .com --tld .ch (overrides BEAVER_INPUTKIT_TLD_WHITELIST)")
	return cmd
}

func newUUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid <text>",
		Short: "Check that text is a canonical version-5 UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, uuidvalidator.ValidateUUID(args[0]))
		},
	}
}

func newDeriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "derive <path>",
		Short: "Print the version-5 UUID of a file's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.kit.Derive(content))
			return nil
		},
	}
}

func newBindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bind <path> <uuid>",
		Short: "Check that a UUID was derived from a file's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate, err := uuid.Parse(args[1])
			if err != nil {
				return report(cmd, false)
			}
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return report(cmd, a.kit.ValidateFileUUID(content, candidate))
		},
	}
}

// report prints the verdict and maps a refusal onto errRejected
func report(cmd *cobra.Command, ok bool) error {
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		return errRejected
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
