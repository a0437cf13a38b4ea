// Package cli wires the phishstats commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/isdelr/phishstats/internal/config"
	"github.com/isdelr/phishstats/internal/database"
	"github.com/isdelr/phishstats/internal/hashing"
	"github.com/isdelr/phishstats/internal/logger"
	"github.com/isdelr/phishstats/internal/output"
	"github.com/isdelr/phishstats/internal/services"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type app struct {
	configFile string
	cfg        *config.Config
	printer    *output.Printer
	db         *sqlx.DB
	logCloser  io.Closer
	stdout     io.Writer
	stderr     io.Writer
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(os.Stdout, os.Stderr)
}

func NewRootCommandWithIO(out, errOut io.Writer) *cobra.Command {
	return newRootCommand(out, errOut)
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{stdout: out, stderr: errOut}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "phishstats",
		Short:         "Analyse a simulated phishing campaign",
		Long:          "phishstats loads the users of a phishing-awareness campaign into SQLite and reports on their password hygiene and click behaviour.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "path to a YAML config file")
	pf.String("db", "", "path to the SQLite database (default database.db)")
	pf.String("format", "", "output format: text, json or yaml (default text)")
	pf.String("log-level", "", "log level (default info)")
	pf.String("log-file", "", "also write JSON logs to this rotating file")
	pf.String("wordlist", "", "password wordlist for the weak password audit (default rockyou.txt)")
	pf.String("encoding", "", "wordlist encoding: latin-1 or utf-8 (default latin-1)")
	pf.String("algorithm", "", fmt.Sprintf("password hash algorithm, one of %v (default md5)", hashing.Algorithms()))
	pf.String("key", "", "key for keyed hash algorithms")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		err := a.setup(cmd)
		if err == nil {
			return nil
		}
		if cerr := a.close(); cerr != nil {
			return errors.Join(err, cerr)
		}
		return err
	}

	cmd.AddCommand(
		newInitCmd(a),
		newLoadCmd(a),
		newSummaryCmd(a),
		newCohortsCmd(a),
		newIntervalsCmd(a),
		newCriticalCmd(a),
		newWeakCmd(a),
		newLegalCmd(a),
		newFramesCmd(a),
		newServeCmd(a),
	)

	closeAfterRun(a, cmd)

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	closer, err := logger.InitWithWriter(a.stderr, cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	a.logCloser = closer
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	format, err := output.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}
	a.printer = output.NewPrinter(cmd.OutOrStdout(), format)
	return nil
}

// closeAfterRun makes every command release the database and log file once
// RunE returns, including when it fails and cobra skips the post-run hooks.
func closeAfterRun(a *app, cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		closeAfterRun(a, sub)
	}
	if cmd.RunE == nil {
		return
	}
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if cerr := a.close(); cerr != nil {
			return errors.Join(err, cerr)
		}
		return err
	}
}

// openDB opens and migrates the configured database once per invocation.
func (a *app) openDB(ctx context.Context) (*sqlx.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.New(a.cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	a.db = db
	return db, nil
}

// stack is the set of services a command works with.
type stack struct {
	users   *services.UserService
	events  *services.EventService
	audit   *services.AuditService
	reports *services.ReportService
}

func (a *app) services(ctx context.Context) (*stack, error) {
	db, err := a.openDB(ctx)
	if err != nil {
		return nil, err
	}
	var key []byte
	if a.cfg.Audit.Key != "" {
		key = []byte(a.cfg.Audit.Key)
	}
	hasher, err := hashing.New(a.cfg.Audit.Algorithm, key)
	if err != nil {
		return nil, err
	}

	s := &stack{
		users:  services.NewUserService(db),
		events: services.NewEventService(db),
	}
	s.audit = services.NewAuditService(s.users, hasher, a.cfg.Audit.Wordlist, a.cfg.Audit.Encoding)
	s.reports = services.NewReportService(s.users, s.events, s.audit)
	return s, nil
}

func (a *app) close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
		a.logCloser = nil
	}
	return errors.Join(errs...)
}
