package recipe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssel/common"
	"cssel/config"
	"cssel/state"
)

// Run is the action behind the "build" subcommand: load the recipe
// named by the first argument, build its selectors and write them to
// the second argument (or STDOUT when absent).
func Run(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no recipe file specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	source := cmd.Args().Get(0)
	rcp, err := Load(source)
	if err != nil {
		return fmt.Errorf("unable to load recipe '%s': %w", source, err)
	}
	if err := env.Rpt.StoreCopy("recipe/"+filepath.Base(source), source); err != nil {
		env.Log.Warn("Unable to store recipe in debug report", zap.Error(err))
	}

	format := env.Cfg.Render.Format
	if f := cmd.String("format"); len(f) > 0 {
		format = f
	}
	outFmt, err := common.ParseOutputFmt(format)
	if err != nil {
		return fmt.Errorf("unsupported output format '%s': %w", format, err)
	}

	results, err := Build(env.Log, rcp, env.Cfg.Render.EscapeIdents)
	if err != nil {
		return fmt.Errorf("unable to build selectors from '%s': %w", source, err)
	}
	env.Log.Info("Built selectors", zap.String("recipe", source), zap.Int("count", len(results)))

	var buf bytes.Buffer
	if err := Write(&buf, outFmt, results); err != nil {
		return fmt.Errorf("unable to render output: %w", err)
	}
	env.Rpt.StoreData("output/result"+outFmt.Ext(), buf.Bytes())

	destination := cmd.Args().Get(1)
	if len(destination) == 0 {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}

	// a directory destination gets a file name derived from the recipe
	if info, err := os.Stat(destination); err == nil && info.IsDir() {
		base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		destination = filepath.Join(destination, config.CleanFileName(base)+outFmt.Ext())
	}
	if _, err := os.Stat(destination); err == nil && !cmd.Bool("overwrite") {
		return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", destination)
	}
	if err := os.WriteFile(destination, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write output '%s': %w", destination, err)
	}
	env.Log.Info("Results written", zap.String("file", destination), zap.String("format", outFmt.String()))
	return nil
}
