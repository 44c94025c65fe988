package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// recordOptions controls what a record subcommand does with the collected record.
type recordOptions struct {
	Dir    string
	Save   bool
	Print  bool
	Prompt bool
}

// recordField binds one text field of a draft to a command-line flag.
type recordField struct {
	name  string
	usage string
	dst   *string
}

// cliDeps are the collaborators a record subcommand runs with.
type cliDeps struct {
	cfg    Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	ids    IDGenerator
	clock  Clock
	logger zerolog.Logger
}

// newDraftFields returns an empty draft of kind and the flag bindings for its fields.
func newDraftFields(kind Kind) (Draft, []recordField, error) {
	switch kind {
	case KindYCH:
		d := &CreateYCHRequest{}
		return d, []recordField{
			{"customer", "customer name", &d.Customer},
			{"reference", "reference sheet or link", &d.Reference},
			{"art", "the YCH being auctioned", &d.Art},
			{"slot", "slot the customer won", &d.Slot},
			{"contact", "customer contact info", &d.Contact},
			{"price", "winning price, free form", &d.Price},
			{"payment", "payment method (paypal, crypto, ...)", &d.Payment},
		}, nil
	case KindCommission:
		d := &CreateCommissionRequest{}
		return d, []recordField{
			{"art", "commissioned art", &d.Art},
			{"customer", "customer name", &d.Customer},
			{"contact", "customer contact info", &d.Contact},
			{"price", "agreed price, free form", &d.Price},
			{"payment", "payment method (paypal, crypto, ...)", &d.Payment},
			{"description", "commission description", &d.Description},
		}, nil
	case KindRequest:
		d := &CreateRequestRequest{}
		return d, []recordField{
			{"customer", "customer name", &d.Customer},
			{"contact", "customer contact info", &d.Contact},
			{"art", "requested art", &d.Art},
			{"description", "request description", &d.Description},
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown record kind %q", kind)
}

// draftIDField returns the id binding of a draft.
func draftIDField(d Draft) *string {
	switch v := d.(type) {
	case *CreateYCHRequest:
		return &v.ID
	case *CreateCommissionRequest:
		return &v.ID
	case *CreateRequestRequest:
		return &v.ID
	}
	return nil
}

// parseRecordFlags parses the flags of a record subcommand into a draft.
func parseRecordFlags(fs *flag.FlagSet, kind Kind, defaultDir string, args []string) (recordOptions, Draft, []recordField, error) {
	draft, fields, err := newDraftFields(kind)
	if err != nil {
		return recordOptions{}, nil, nil, err
	}
	opts := recordOptions{Dir: defaultDir}

	fs.StringVar(draftIDField(draft), "id", "", "record identifier (generated when empty)")
	for _, f := range fields {
		fs.StringVar(f.dst, f.name, "", f.usage)
	}
	fs.StringVar(&opts.Dir, "dir", opts.Dir, "directory to write the record file into (default: ARTM_DIR or .)")
	fs.BoolVar(&opts.Save, "save", true, "write the record to a new file")
	fs.BoolVar(&opts.Print, "print", false, "print the record as JSON to stdout")
	fs.BoolVar(&opts.Prompt, "prompt", false, "ask on stdin for every field left empty")
	if err := fs.Parse(args); err != nil {
		return recordOptions{}, nil, nil, err
	}
	if fs.NArg() > 0 {
		return recordOptions{}, nil, nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if !opts.Save && !opts.Print {
		return recordOptions{}, nil, nil, errors.New("nothing to do: both -save and -print are off")
	}
	return opts, draft, fields, nil
}

// promptFields asks for every empty field, one line each.
func promptFields(in io.Reader, out io.Writer, fields []recordField) error {
	reader := bufio.NewReader(in)
	for _, f := range fields {
		if *f.dst != "" {
			continue
		}
		fmt.Fprintf(out, "%s: ", f.name)
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return fmt.Errorf("read %s: %w", f.name, err)
		}
		*f.dst = strings.TrimRight(line, "\r\n")
	}
	return nil
}

// runRecordCommand collects a record of kind from args (and stdin when asked),
// then persists and/or renders it.
func runRecordCommand(ctx context.Context, kind Kind, args []string, deps cliDeps) error {
	fs := flag.NewFlagSet(string(kind), flag.ContinueOnError)
	fs.SetOutput(deps.stderr)
	opts, draft, fields, err := parseRecordFlags(fs, kind, deps.cfg.Dir, args)
	if err != nil {
		return err
	}
	if opts.Prompt {
		if err := promptFields(deps.stdin, deps.stderr, fields); err != nil {
			return err
		}
	}

	rec, err := Stamp(ctx, draft, deps.ids, deps.clock)
	if err != nil {
		return err
	}
	store := NewFileStore(opts.Dir, deps.stdout, deps.logger)
	if opts.Save {
		path, err := store.Persist(rec)
		if err != nil {
			return err
		}
		deps.logger.Info().Str("kind", string(kind)).Str("id", idOf(rec)).Str("path", path).Msg("record saved")
	}
	if opts.Print {
		if err := store.Render(rec); err != nil {
			return err
		}
	}
	return nil
}

// idOf returns the identifier of a record.
func idOf(rec Record) string {
	switch v := rec.(type) {
	case YCH:
		return v.ID
	case Commission:
		return v.ID
	case Request:
		return v.ID
	}
	return ""
}
