// Command jsonschemacheck validates one instance document against one JSON
// Schema document, both given as file paths, and reports every violation
// found.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kschemago/jsonschemacheck"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var lenient bool
	var locale string
	logCfg := newLogConfig()

	cmd := &cobra.Command{
		Use:   "jsonschemacheck <schema-file> <instance-file>",
		Short: "Validate a JSON or YAML instance document against a JSON Schema document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := logCfg.newHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger := slog.New(handler)
			return run(cmd.OutOrStdout(), logger, args[0], args[1], lenient, locale)
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "validate with the null-permissive lenient overlay instead of the schema's own dialect")
	cmd.Flags().StringVar(&locale, "locale", "en", "locale used to render error messages (en, zh-Hans)")
	logCfg.registerFlags(cmd.Flags())

	return cmd
}

func run(stdout io.Writer, logger *slog.Logger, schemaPath, instancePath string, lenient bool, locale string) error {
	logger.Info("loading schema", "path", schemaPath)
	schema, err := decodeFile(schemaPath)
	if err != nil {
		return err
	}

	logger.Info("loading instance", "path", instancePath)
	instance, err := decodeFile(instancePath)
	if err != nil {
		return err
	}

	var validator *jsonschema.Validator
	if lenient {
		validator, err = jsonschema.NewCustom(schema)
	} else {
		validator, err = jsonschema.New(schema)
	}
	if err != nil {
		return fmt.Errorf("building validator: %w", err)
	}

	result := validator.Validate(instance)
	logger.Info("validation complete", "valid", result.Valid, "errors", len(result.Errors))

	localizer, err := localizerFor(locale)
	if err != nil {
		logger.Warn("falling back to default messages", "locale", locale, "error", err)
	}

	if result.Valid {
		fmt.Fprintln(stdout, "ok")
		return nil
	}
	for _, violation := range result.Errors {
		message := violation.Message
		if localizer != nil {
			message = violation.Localize(localizer)
		}
		fmt.Fprintf(stdout, "%s: %s (at %s)\n", violation.KeywordLocation, message, violation.InstanceLocation)
	}
	return fmt.Errorf("instance failed validation: %d error(s)", len(result.Errors))
}

func localizerFor(locale string) (*jsonschema.Localizer, error) {
	bundle, err := jsonschema.NewLocaleBundle()
	if err != nil {
		return nil, err
	}
	return bundle.NewLocalizer(locale), nil
}
