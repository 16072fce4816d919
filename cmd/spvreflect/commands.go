package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/spirv-reflect/shaderfs"
	"github.com/wippyai/spirv-reflect/spirv"
)

// load decodes path and runs Validate when configured.
func (a *app) load(path string) (*spirv.Module, error) {
	m, err := shaderfs.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	if a.cfg.ValidateIDs {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	a.log.Debug("decoded module",
		zap.String("path", path),
		zap.Int("instructions", len(m.Instructions)),
		zap.Int("unsupported", m.UnsupportedCount()))
	return m, nil
}

func (a *app) infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Print the module header and entry points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			writeInfo(newPrinter(cmd.OutOrStdout()), args[0], m)
			return nil
		},
	}
	cmd.Flags().Bool("validate", false, "check result IDs against the bound")
	return cmd
}

func writeInfo(p *printer, path string, m *spirv.Module) {
	row := func(label, format string, args ...any) {
		fmt.Fprintf(p.w, "%s %s\n", p.render(labelStyle, fmt.Sprintf("%-13s", label+":")), fmt.Sprintf(format, args...))
	}

	fmt.Fprintln(p.w, p.render(titleStyle, path))
	row("Magic", "0x%08x", m.Magic)
	row("Version", "%s", m.VersionString())
	row("Generator", "vendor %d, version %d", m.GeneratorVendor(), m.GeneratorVersion())
	row("Bound", "%d", m.Bound)
	row("Instructions", "%d (%d unsupported)", len(m.Instructions), m.UnsupportedCount())

	caps := m.Capabilities()
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = c.String()
	}
	row("Capabilities", "%s", strings.Join(names, " "))

	eps := m.EntryPoints()
	row("Entry points", "%d", len(eps))
	for _, ep := range eps {
		fmt.Fprintf(p.w, "  %s %q %%%d (%d interface)\n", ep.ExecutionModel, ep.Name, ep.Function, len(ep.Interface))
	}
}

func (a *app) inputsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inputs FILE",
		Short: "List vertex input attributes ordered by location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			attrs, err := spirv.ResolveInputs(m, a.cfg.EntryPoint)
			if err != nil {
				return err
			}
			writeInputs(newPrinter(cmd.OutOrStdout()), attrs)
			return nil
		},
	}
	cmd.Flags().StringP("entry", "e", "", "entry point name (default main)")
	return cmd
}

func writeInputs(p *printer, attrs []spirv.InputAttribute) {
	fmt.Fprintln(p.w, p.render(labelStyle, fmt.Sprintf("%-9s %-11s %-9s %s", "LOCATION", "COMPONENTS", "TYPE", "NAME")))
	for _, a := range attrs {
		typ := a.Component.Kind.String()
		if a.Component.Width != 0 {
			typ = fmt.Sprintf("%s%d", typ, a.Component.Width)
		}
		fmt.Fprintf(p.w, "%-9d %-11d %-9s %s\n", a.Location, a.Components, typ, a.Name)
	}
}

func (a *app) layoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Print a packed vertex buffer layout for the vertex inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			attrs, err := spirv.ResolveInputs(m, a.cfg.EntryPoint)
			if err != nil {
				return err
			}
			layout, err := spirv.BuildVertexLayout(attrs, a.cfg.Binding)
			if err != nil {
				return err
			}
			writeLayout(newPrinter(cmd.OutOrStdout()), layout)
			return nil
		},
	}
	cmd.Flags().StringP("entry", "e", "", "entry point name (default main)")
	cmd.Flags().Uint32("binding", 0, "vertex buffer binding number")
	return cmd
}

func writeLayout(p *printer, l spirv.VertexLayout) {
	fmt.Fprintf(p.w, "%s %d  %s %d\n", p.render(labelStyle, "binding"), l.Binding, p.render(labelStyle, "stride"), l.Stride)
	fmt.Fprintln(p.w, p.render(labelStyle, fmt.Sprintf("%-9s %-7s %s", "LOCATION", "OFFSET", "FORMAT")))
	for _, attr := range l.Attributes {
		fmt.Fprintf(p.w, "%-9d %-7d %s (%d)\n", attr.Location, attr.Offset, attr.Format, uint32(attr.Format))
	}
}

func (a *app) disCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dis FILE",
		Short: "Disassemble a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			return spirv.Disassemble(cmd.OutOrStdout(), m)
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Dump the decoded module structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			dump(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dump(w io.Writer, m *spirv.Module) {
	spewConfig.Fdump(w, m.Header)
	for i := range m.Instructions {
		inst := &m.Instructions[i]
		fmt.Fprintf(w, "[%d] %s @%d\n", i, inst.Opcode, inst.Offset)
		spewConfig.Fdump(w, inst.Imm)
	}
}

func (a *app) scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Decode every matching file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := shaderfs.DecodeDir(cmd.Context(), args[0], shaderfs.Options{
				Pattern:  a.cfg.Pattern,
				Workers:  a.cfg.Workers,
				Validate: a.cfg.ValidateIDs,
			})
			if err != nil {
				return err
			}
			if failed := writeScan(newPrinter(cmd.OutOrStdout()), results, a.cfg.EntryPoint); failed > 0 {
				return fmt.Errorf("%d of %d files failed to decode", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().String("pattern", "", "file name pattern (default *.spv)")
	cmd.Flags().Int("workers", 0, "concurrent decodes (default number of CPUs)")
	cmd.Flags().Bool("validate", false, "check result IDs against the bound")
	cmd.Flags().StringP("entry", "e", "", "entry point whose inputs are summarized")
	return cmd
}

func writeScan(p *printer, results []shaderfs.Result, entry string) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(p.w, "%s %s: %v\n", p.render(errorStyle, "FAIL"), r.Path, r.Err)
			continue
		}
		summary := fmt.Sprintf("%d instructions", len(r.Module.Instructions))
		if counts, err := spirv.InputDescriptions(r.Module, entry); err == nil {
			summary += fmt.Sprintf(", inputs %v", counts)
		}
		fmt.Fprintf(p.w, "%s %s: SPIR-V %s, %s\n", p.render(okStyle, "ok  "), r.Path, r.Module.VersionString(), summary)
	}
	return failed
}
