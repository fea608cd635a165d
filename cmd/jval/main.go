package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/reoring/jval"
	fastjsondrv "github.com/reoring/jval/source/fastjson"
	stdjson "github.com/reoring/jval/source/json"
	jsoniterdrv "github.com/reoring/jval/source/jsoniter"
	jstreamdrv "github.com/reoring/jval/source/jstream"
	jxdrv "github.com/reoring/jval/source/jx"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "get":
		err = getCmd(os.Args[2:], os.Stdin, os.Stdout)
	case "fmt":
		err = fmtCmd(os.Args[2:], os.Stdin, os.Stdout)
	case "eq":
		var same bool
		same, err = eqCmd(os.Args[2:])
		if err == nil && !same {
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
	if errors.Is(err, flag.ErrHelp) || errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		fatalf("jval %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "jval CLI\n\nUsage:\n  jval get [-driver go-json|std|fastjson|jx|jsoniter|jstream] [-v] POINTER [FILE]\n  jval fmt [-yaml] [FILE]\n  jval eq FILE1 FILE2\n\nNotes:\n  - FILE defaults to stdin. .yaml and .yml files are read as YAML.\n  - eq exits 1 when the documents differ.")
}

var errUsage = errors.New("usage")

var drivers = map[string]func() jval.Driver{
	"go-json":  jval.DefaultDriver,
	"std":      stdjson.Driver,
	"fastjson": fastjsondrv.Driver,
	"jx":       jxdrv.Driver,
	"jsoniter": jsoniterdrv.Driver,
	"jstream":  jstreamdrv.Driver,
}

func getCmd(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	var driverName string
	var verbose bool
	fs.StringVar(&driverName, "driver", "go-json", "JSON driver: go-json, std, fastjson, jx, jsoniter or jstream")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return errUsage
	}

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	mk, ok := drivers[driverName]
	if !ok {
		return fmt.Errorf("unknown driver %q", driverName)
	}
	jval.SetDriver(mk())
	defer jval.UseDefaultDriver()

	ptr, err := jval.ParsePointer(fs.Arg(0))
	if err != nil {
		return err
	}
	name := fs.Arg(1)
	logf("get: driver=%s pointer=%s input=%s", jval.CurrentDriver().Name(), ptr, displayName(name))

	doc, err := load(name, stdin)
	if err != nil {
		return err
	}
	v := ptr.Lookup(doc)
	if !v.Exists() {
		return fmt.Errorf("%s: no value", ptr)
	}
	logf("get: found %s", v.Kind())
	out, err := jval.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", out)
	return err
}

func fmtCmd(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	var asYAML bool
	fs.BoolVar(&asYAML, "yaml", false, "write YAML instead of JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}
	doc, err := load(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	if asYAML {
		out, err := jval.ToYAML(doc)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}
	out, err := jval.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", out)
	return err
}

func eqCmd(args []string) (bool, error) {
	fs := flag.NewFlagSet("eq", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return false, errUsage
	}
	a, err := load(fs.Arg(0), nil)
	if err != nil {
		return false, err
	}
	b, err := load(fs.Arg(1), nil)
	if err != nil {
		return false, err
	}
	return a.Equal(b), nil
}

// load reads name, or stdin when name is "" or "-". YAML is chosen by
// file extension.
func load(name string, stdin io.Reader) (jval.Value, error) {
	var data []byte
	var err error
	if name == "" || name == "-" {
		if stdin == nil {
			return jval.Value{}, errors.New("stdin is not available")
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return jval.Value{}, err
	}
	if isYAML(name) {
		return jval.FromYAML(data)
	}
	return jval.Parse(data)
}

func isYAML(name string) bool {
	for _, ext := range []string{".yaml", ".yml"} {
		if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
			return true
		}
	}
	return false
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
