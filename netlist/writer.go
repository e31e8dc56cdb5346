// Verilog text emission: headers, declarations, instances, wires, assigns.
// Every helper appends to the caller's stream and wraps I/O failures with
// call-site context.
package netlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/fpgakit/muxgen/module"
)

// FileHeader writes the banner comment that opens a generated netlist.
func FileHeader(w io.Writer, usage string) error {
	_, err := fmt.Fprintf(w,
		"//-------------------------------------------\n"+
			"//    FPGA Synthesizable Verilog Netlist\n"+
			"//    Description: %s\n"+
			"//-------------------------------------------\n\n", usage)

	return errors.Wrap(err, "write file header")
}

// Include writes a Verilog include directive.
func Include(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "`include \"%s\"\n", path)

	return errors.Wrapf(err, "include %s", path)
}

// Comment writes one banner comment line.
func Comment(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "//----- %s -----\n", text)

	return errors.Wrap(err, "write comment")
}

// ModuleDeclaration writes the header of a registered module: its name and
// every declared port with direction keyword and bit range.
func ModuleDeclaration(w io.Writer, mgr *module.Manager, id module.ModuleID) error {
	name, err := mgr.Name(id)
	if err != nil {
		return err
	}
	ports, err := mgr.Ports(id)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "module %s (\n", name); err != nil {
		return errors.Wrapf(err, "declare module %s", name)
	}
	for i, p := range ports {
		sep := ","
		if i == len(ports)-1 {
			sep = ""
		}
		if _, err = fmt.Fprintf(w, "  %s %s%s\n", p.Direction, rangeDecl(p.Name, p.Width), sep); err != nil {
			return errors.Wrapf(err, "declare module %s", name)
		}
	}
	_, err = fmt.Fprintf(w, ");\n")

	return errors.Wrapf(err, "declare module %s", name)
}

// ModuleEnd closes a module body.
func ModuleEnd(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "endmodule // %s\n\n", name)

	return errors.Wrapf(err, "end module %s", name)
}

// WireDecl declares a local wire bus inside a module body.
func WireDecl(w io.Writer, name string, width int) error {
	_, err := fmt.Fprintf(w, "  wire %s;\n", rangeDecl(name, width))

	return errors.Wrapf(err, "declare wire %s", name)
}

// Assign writes one continuous assignment.
func Assign(w io.Writer, lhs, rhs string) error {
	_, err := fmt.Fprintf(w, "  assign %s = %s;\n", lhs, rhs)

	return errors.Wrapf(err, "assign %s", lhs)
}

// Instance writes one child instance inside the current module body and
// returns the completed record for the parent's bookkeeping.
//
// Explicit rendering binds by name and skips child ports absent from conns
// (global ports resolve by name at a higher level). Positional rendering
// follows the child's port declaration order and requires every port to be
// connected, returning ErrMissingConnection otherwise.
func Instance(w io.Writer, mgr *module.Manager, child module.ModuleID, instName string,
	conns map[string]module.BitSlice, explicit bool) (module.ChildInstance, error) {

	name, err := mgr.Name(child)
	if err != nil {
		return module.ChildInstance{}, err
	}
	ports, err := mgr.Ports(child)
	if err != nil {
		return module.ChildInstance{}, err
	}
	binds := make([]string, 0, len(ports))
	for _, p := range ports {
		slice, ok := conns[p.Name]
		if !ok {
			if explicit {
				continue
			}

			return module.ChildInstance{}, fmt.Errorf("instance %q of %q port %q: %w",
				instName, name, p.Name, ErrMissingConnection)
		}
		if explicit {
			binds = append(binds, fmt.Sprintf(".%s(%s)", p.Name, slice))
		} else {
			binds = append(binds, slice.String())
		}
	}
	if _, err = fmt.Fprintf(w, "  %s %s (%s);\n", name, instName, strings.Join(binds, ", ")); err != nil {
		return module.ChildInstance{}, errors.Wrapf(err, "instance %s of %s", instName, name)
	}

	return module.ChildInstance{Child: child, Name: instName, Conns: conns}, nil
}

// rangeDecl renders "name" for single bits and "[msb:0] name" for buses.
func rangeDecl(name string, width int) string {
	if width == 1 {
		return name
	}

	return fmt.Sprintf("[%d:0] %s", width-1, name)
}
