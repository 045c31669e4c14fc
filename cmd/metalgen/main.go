// Package main provides the CLI entrypoint for metalgen.
//
// metalgen converts hardware description documents — a per-block
// register description in a relaxed JSON dialect and a system-level
// object model in strict JSON — into C driver artifacts: base headers
// with offset/width macros, interrupt tables and base-address arrays,
// and per-instance driver sources built around a vtable indirection.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"metalgen/internal/document"
	"metalgen/internal/manifest"
	"metalgen/internal/render"
	"metalgen/internal/run"
)

type CLI struct {
	Base    BaseCmd    `cmd:"" help:"Generate only the base header for a device type."`
	Drivers DriversCmd `cmd:"" help:"Generate the base header and per-instance driver sources."`
	Batch   BatchCmd   `cmd:"" help:"Generate artifacts for every entry of a YAML manifest."`

	Verbose bool `short:"v" help:"Enable debug logging."`
}

type outputOpts struct {
	Out       string `short:"m" default:"." help:"Output directory root." type:"path"`
	Overwrite bool   `short:"x" help:"Overwrite existing output files."`
}

type modelOpts struct {
	ObjectModel string `short:"o" required:"" help:"Path to the object model document." type:"existingfile"`
	DumpTree    bool   `hidden:"" help:"Dump the decoded object model tree to stderr."`
}

type BaseCmd struct {
	outputOpts
	modelOpts
	Vendor      string `required:"" help:"Vendor name used in file and macro names."`
	Device      string `short:"D" required:"" help:"Device type name to search the object model for."`
	DUHDocument string `short:"d" name:"duh-document" help:"Optional register description document." type:"existingfile"`
}

func (c *BaseCmd) Run() error {
	return generate(c.Vendor, c.Device, c.ObjectModel, c.DUHDocument,
		run.ModeBaseHeader, c.outputOpts, c.DumpTree)
}

type DriversCmd struct {
	outputOpts
	modelOpts
	Vendor      string `required:"" help:"Vendor name used in file and macro names."`
	Device      string `short:"D" required:"" help:"Device type name to search the object model for."`
	DUHDocument string `short:"d" name:"duh-document" required:"" help:"Register description document." type:"existingfile"`
}

func (c *DriversCmd) Run() error {
	return generate(c.Vendor, c.Device, c.ObjectModel, c.DUHDocument,
		run.ModeDrivers, c.outputOpts, c.DumpTree)
}

type BatchCmd struct {
	outputOpts
	modelOpts
	Manifest string `arg:"" help:"YAML manifest listing devices to generate." type:"existingfile"`
}

func (c *BatchCmd) Run() error {
	mf, err := manifest.LoadFile(c.Manifest)
	if err != nil {
		return err
	}

	for _, entry := range mf.Devices {
		mode, err := entry.RunMode()
		if err != nil {
			return err
		}
		err = generate(entry.Vendor, entry.Device, c.ObjectModel, entry.RegisterDoc,
			mode, c.outputOpts, c.DumpTree)
		if err != nil {
			return fmt.Errorf("manifest entry %s: %w", entry.Device, err)
		}
	}
	return nil
}

// generate executes one full run for one device type: read documents,
// generate in memory, then write. Rendering completes before the first
// write, so an aborted run leaves existing files untouched.
func generate(vendor, device, omPath, duhPath string, mode run.Mode, out outputOpts, dump bool) error {
	om, err := os.ReadFile(omPath)
	if err != nil {
		return fmt.Errorf("reading object model: %w", err)
	}

	var duh []byte
	if duhPath != "" {
		duh, err = os.ReadFile(duhPath)
		if err != nil {
			return fmt.Errorf("reading register document: %w", err)
		}
	}

	if dump {
		tree, err := document.Decode(om)
		if err != nil {
			return err
		}
		spew.Fdump(os.Stderr, tree)
	}

	res, err := run.Generate(run.Config{
		Vendor:      vendor,
		Device:      device,
		Mode:        mode,
		ObjectModel: om,
		RegisterDoc: duh,
	})
	if err != nil {
		return err
	}

	if err := render.WriteFiles(res.Files, out.Out, out.Overwrite); err != nil {
		return err
	}

	for _, warn := range res.Diagnostics.Warnings {
		logrus.Warn(warn.String())
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("metalgen"),
		kong.Description("Generate C driver headers and sources from hardware description documents."),
		kong.UsageOnError(),
	)

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cli.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := ctx.Run(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
