package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	// The generated file is piped through goimports, so that the wrapper
	// functions need not be formatted here.
	eg.Go(func() error {
		goimports := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := goimports.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		goimports.Stdout = out
		goimports.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := goimports.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return generate(ctx, in.Name(), in, out)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var expectMethod = regexp.MustCompile(`^func \(vmt vmTestCase\) expect(.+?)\((.+?)\) vmTestCase`)

// generate writes an expectVM* wrapper for every vmTestCase.expect* method
// declared in r, so that expectations may be passed around as values, e.g.
// to vmTestCase.apply.
func generate(ctx context.Context, name string, r io.Reader, w io.Writer) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package main\n\n")

	buf.WriteString("// @generated from ")
	buf.WriteString(name)
	buf.WriteString("\n\n")

	if args := flag.Args(); len(args) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_vm_expects.go --")
		for _, arg := range args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if match := expectMethod.FindSubmatch(sc.Bytes()); len(match) > 0 {
			writeWrapper(&buf, match[1], match[2])
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(w); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func writeWrapper(buf *bytes.Buffer, whatName, args []byte) {
	buf.WriteString("func expectVM")
	buf.Write(whatName)
	buf.WriteString("(")
	buf.Write(args)
	buf.WriteString(") func(vmTestCase) vmTestCase {\n")
	buf.WriteString("\treturn func(vmt vmTestCase) vmTestCase {\n")
	buf.WriteString("\t\treturn vmt.expect")
	buf.Write(whatName)
	buf.WriteString("(")

	for i, part := range bytes.Split(args, []byte(",")) {
		if i > 0 {
			buf.WriteString(", ")
		}
		fields := bytes.Fields(part)
		buf.Write(fields[0])
		if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
			buf.WriteString("...")
		}
	}

	buf.WriteString(")\n")
	buf.WriteString("\t}\n")
	buf.WriteString("}\n\n")
}
