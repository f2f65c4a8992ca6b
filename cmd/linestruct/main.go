// Package main implements the linestruct CLI over the kernel's own four
// operations: decode, encode, validate, and detect.
//
// Usage:
//
//	linestruct <verb> [flags] [file]
//
// Verbs:
//
//	decode     Parse LineStruct text and print it as bridge JSON
//	encode     Parse bridge JSON and print it as LineStruct text
//	validate   Check LineStruct text against an external schema (-schema)
//	detect     Classify input as json, linestruct, or other
//
// With no file argument, input is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/linestruct/linestruct"
)

// Command line flags
var (
	strict     = flag.Bool("strict", true, "fail the whole decode on the first malformed row instead of skipping it")
	sample     = flag.Bool("sample", false, "truncate the decoded document to -sample-size before printing (decode verb only)")
	sampleSize = flag.Int("sample-size", 3, "rows, and nested array elements, kept by -sample")
	locale     = flag.String("locale", "en", "locale for error messages (en, zh-Hans)")
	configPath = flag.String("config", "", "optional YAML file overriding the flags above")
	schemaPath = flag.String("schema", "", "external field list to check compatibility against (validate verb only)")
	verbose    = flag.Bool("verbose", false, "verbose logging")
	help       = flag.Bool("help", false, "show help message")
)

// runConfig mirrors the flag set above for -config overrides. Pointers
// distinguish "absent from the file" from a zero value, so a config file
// only needs to mention the settings it wants to change.
type runConfig struct {
	Strict     *bool   `yaml:"strict"`
	SampleSize *int    `yaml:"sample_size"`
	Locale     *string `yaml:"locale"`
}

func main() {
	flag.Parse()

	if *help {
		showHelp()
		return
	}
	if flag.NArg() == 0 {
		showHelp()
		os.Exit(2)
	}

	// Flags may also follow the verb, so parse what comes after it too.
	verb := flag.Arg(0)
	if err := flag.CommandLine.Parse(flag.Args()[1:]); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if *help {
		showHelp()
		return
	}

	if *configPath != "" {
		if err := applyRunConfig(*configPath); err != nil {
			log.Fatalf("❌ failed to load config %s: %v", *configPath, err)
		}
		if *verbose {
			log.Printf("📋 applied config from %s", *configPath)
		}
	}

	input, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("❌ failed to read input: %v", err)
	}

	if *verbose {
		log.Printf("🚀 running %s (strict=%v sample=%v sample-size=%d locale=%s)",
			verb, *strict, *sample, *sampleSize, *locale)
	}

	codec := linestruct.NewCodec().WithStrict(*strict).WithSampleSize(*sampleSize)

	var out string
	switch verb {
	case "decode":
		out, err = runDecode(codec, input)
	case "encode":
		out, err = runEncode(codec, input)
	case "validate":
		out, err = runValidate(input)
	case "detect":
		out = linestruct.Classify(input).String()
	default:
		log.Fatalf("❌ unknown verb %q (want decode, encode, validate, or detect)", verb)
	}
	if err != nil {
		log.Fatalf("❌ %s failed: %s", verb, localizeErr(err))
	}

	fmt.Println(out)
}

// localizeErr renders a *linestruct.FieldError in the configured -locale,
// falling back to its default English message for any other error type or
// if the locale bundle fails to load.
func localizeErr(err error) string {
	fe, ok := err.(*linestruct.FieldError)
	if !ok {
		return err.Error()
	}
	bundle, bundleErr := linestruct.GetI18n()
	if bundleErr != nil {
		return fe.Error()
	}
	return fe.Localize(bundle.NewLocalizer(*locale))
}

func runDecode(codec *linestruct.Codec, input string) (string, error) {
	var doc *linestruct.Document
	var ferr *linestruct.FieldError
	if *sample {
		doc, ferr = codec.Sample(input)
	} else {
		doc, ferr = codec.Decode(input)
	}
	if ferr != nil {
		return "", ferr
	}

	data, err := codec.ToJSON(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runEncode(codec *linestruct.Codec, input string) (string, error) {
	doc, err := codec.FromJSON([]byte(input))
	if err != nil {
		return "", err
	}

	text, ferr := linestruct.Encode(doc)
	if ferr != nil {
		return "", ferr
	}
	return text, nil
}

func runValidate(input string) (string, error) {
	if *schemaPath == "" {
		return "", fmt.Errorf("-schema is required for the validate verb")
	}

	schemaText, err := os.ReadFile(*schemaPath)
	if err != nil {
		return "", err
	}

	external, ferr := linestruct.ParseExternalSchema(string(schemaText))
	if ferr != nil {
		return "", ferr
	}

	if msg := linestruct.ValidateAgainst(external, input); msg != nil {
		return "", fmt.Errorf("%s", *msg)
	}
	return "ok", nil
}

// readInput reads from args[0] when given, else from stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// applyRunConfig loads a YAML run config and overrides any flags it names.
func applyRunConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var cfg runConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	if cfg.Strict != nil {
		*strict = *cfg.Strict
	}
	if cfg.SampleSize != nil {
		*sampleSize = *cfg.SampleSize
	}
	if cfg.Locale != nil {
		*locale = *cfg.Locale
	}
	return nil
}

func showHelp() {
	fmt.Println(`linestruct - LineStruct format CLI

Decode, encode, validate, and detect LineStruct documents.

USAGE:
    linestruct <verb> [flags] [file]

VERBS:
    decode      Parse LineStruct text, print bridge JSON
    encode      Parse bridge JSON, print LineStruct text
    validate    Check LineStruct text against -schema
    detect      Classify input as json, linestruct, or other

FLAGS:`)
	flag.PrintDefaults()
	fmt.Println(`
EXAMPLES:
    linestruct decode rows.lns
    linestruct decode -sample -sample-size=5 rows.lns
    cat rows.json | linestruct encode
    linestruct validate -schema=required.schema rows.lns
    linestruct detect rows.lns`)
}
