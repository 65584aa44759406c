package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// ErrUnknown is returned when an argument names no known status code.
var ErrUnknown = errors.New("unknown status code")

// parseDomain resolves a domain name as accepted on the command line.
func parseDomain(s string) (status.DomainID, error) {
	switch strings.ToLower(s) {
	case "errno":
		return status.DomainErrno, nil
	case "adl":
		return status.DomainADL, nil
	case "ddc":
		return status.DomainDDC, nil
	default:
		return 0, fmt.Errorf("invalid domain: %s (must be errno, adl, or ddc)", s)
	}
}

// resolve turns one argument into a shared-space code. local is the
// domain numeric arguments belong to, or zero for shared-space input.
func resolve(r *status.Registry, local status.DomainID, arg string) (status.Code, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		c, ok := r.NameToCode(arg)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknown, arg)
		}
		return c, nil
	}

	if local != 0 {
		if n > status.LocalMax || n < -status.LocalMax {
			return 0, fmt.Errorf("%w: %d is not a %s-local code", ErrUnknown, n, local)
		}
		return r.Modulate(n, local), nil
	}

	c := status.Code(n)
	if c != status.OK {
		if _, ok := r.Lookup(c); !ok {
			return 0, fmt.Errorf("%w: %d is in no domain", ErrUnknown, n)
		}
	}
	return c, nil
}

// describe writes one line for c: name, shared code, description, domain
// and domain-local code. The local code is the value -domain accepts, also
// for domains whose tables are keyed by shared codes.
func describe(w io.Writer, r *status.Registry, c status.Code) {
	info := r.Describe(c)
	if c == status.OK {
		fmt.Fprintf(w, "%s(0): %s\n", info.Name, info.Description)
		return
	}
	id := r.Classify(c)
	fmt.Fprintf(w, "%s(%d): %s [%s %d]\n", info.Name, c, info.Description, id, r.Demodulate(c, id))
}

func runLookup(w io.Writer, domain string, args []string) error {
	r := status.Default()

	var local status.DomainID
	if domain != "" {
		id, err := parseDomain(domain)
		if err != nil {
			return err
		}
		local = id
	}

	var errs []error
	for _, arg := range args {
		c, err := resolve(r, local, arg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		describe(w, r, c)
	}
	return errors.Join(errs...)
}

// known reports whether info came from a table rather than being
// synthesized for an unlisted code.
func known(id status.DomainID, info status.Info) bool {
	rest, ok := strings.CutPrefix(info.Name, id.String()+"_")
	if !ok {
		return true
	}
	_, err := strconv.Atoi(rest)
	return err != nil
}

// codes returns the listed codes of one domain in local-value order,
// negative values first. A name found under both signs, as errno names
// are, is listed once.
func codes(r *status.Registry, id status.DomainID) []status.Info {
	var out []status.Info
	seen := make(map[string]bool)
	for raw := -status.LocalMax; raw <= status.LocalMax; raw++ {
		if raw == 0 {
			continue
		}
		info := r.Describe(r.Modulate(raw, id))
		if known(id, info) && !seen[info.Name] {
			seen[info.Name] = true
			out = append(out, info)
		}
	}
	return out
}

func runList(w io.Writer, domain string) error {
	r := status.Default()

	ids := r.Domains()
	if !strings.EqualFold(domain, "all") {
		id, err := parseDomain(domain)
		if err != nil {
			return err
		}
		ids = []status.DomainID{id}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tCODE\tNAME\tDESCRIPTION")
	for _, id := range ids {
		for _, info := range codes(r, id) {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", id, info.Code, info.Name, info.Description)
		}
	}
	return tw.Flush()
}
