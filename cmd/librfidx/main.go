// Command librfidx parses, transforms and re-serializes contactless tag
// dumps (NTAG215, Mifare Classic 1K, Amiibo). Grounded on
// original_source/src/platform/rfidx.c's argument table and precondition
// checks, and on the teacher's reset/main.go for the flag+log/slog CLI
// shape.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/Firefox2100/librfidx/internal/amiibo"
	"github.com/Firefox2100/librfidx/internal/dispatch"
	"github.com/Firefox2100/librfidx/internal/format"
	"github.com/Firefox2100/librfidx/internal/rng"
	"github.com/Firefox2100/librfidx/internal/tagmodel"
	"github.com/Firefox2100/librfidx/status"
)

func main() {
	var (
		inputPath  string
		outputPath string
		inputType  string
		outputForm string
		transform  string
		uuidHex    string
		retailKey  string
		verbose    bool
		logFormat  string
	)

	flag.StringVar(&inputPath, "i", "", "input dump file")
	flag.StringVar(&inputPath, "input", "", "input dump file")
	flag.StringVar(&outputPath, "o", "", "output dump file")
	flag.StringVar(&outputPath, "output", "", "output dump file")
	flag.StringVar(&inputType, "I", "", "input tag type: ntag215, mfc1k, amiibo")
	flag.StringVar(&inputType, "input-type", "", "input tag type: ntag215, mfc1k, amiibo")
	flag.StringVar(&outputForm, "F", "", "output format: binary, json, nfc, eml")
	flag.StringVar(&outputForm, "output-format", "", "output format: binary, json, nfc, eml")
	flag.StringVar(&transform, "t", "", "transform: generate, randomize-uid, wipe")
	flag.StringVar(&transform, "transform", "", "transform: generate, randomize-uid, wipe")
	flag.StringVar(&uuidHex, "uuid", "", "8-byte hex figure UUID, required for amiibo generate")
	flag.StringVar(&retailKey, "retail-key", "", "path to the retail.bin dumped key pair, required for amiibo")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if logFormat == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	}

	if err := run(runArgs{
		inputPath:  inputPath,
		outputPath: outputPath,
		inputType:  inputType,
		outputForm: outputForm,
		transform:  transform,
		uuidHex:    uuidHex,
		retailKey:  retailKey,
	}); err != nil {
		log.Println(err)
		os.Exit(exitCode(err))
	}
}

type runArgs struct {
	inputPath  string
	outputPath string
	inputType  string
	outputForm string
	transform  string
	uuidHex    string
	retailKey  string
}

func run(args runArgs) error {
	if args.outputPath != "" && args.outputForm == "" {
		return status.New(status.FileFormatError, "--output requires --output-format")
	}
	if args.inputPath == "" && (args.inputType == "" || args.transform == "") {
		return status.New(status.FileFormatError, "no --input given: --input-type and --transform are both required to generate from scratch")
	}

	kind, err := parseTagKind(args.inputType)
	if err != nil {
		return err
	}

	var keys *amiibo.DumpedKeyPair
	if kind == tagmodel.TagAmiibo {
		if args.retailKey == "" {
			return status.New(status.AmiiboKeyIOError, "amiibo requires --retail-key")
		}
		raw, err := os.ReadFile(args.retailKey)
		if err != nil {
			return status.Wrap(status.AmiiboKeyIOError, "reading retail key file", err)
		}
		keys, err = amiibo.LoadDumpedKeys(raw)
		if err != nil {
			return err
		}
	}

	cmd, err := parseTransformCommand(args.transform)
	if err != nil {
		return err
	}

	var uuid []byte
	if args.uuidHex != "" {
		uuid, err = hex.DecodeString(args.uuidHex)
		if err != nil {
			return status.Wrap(status.NumericalOperationFailed, "--uuid is not valid hex", err)
		}
	}
	if kind == tagmodel.TagAmiibo && cmd == tagmodel.CmdGenerate && len(uuid) != 8 {
		return status.New(status.NumericalOperationFailed, "amiibo generate requires an 8-byte --uuid")
	}

	var data, header any
	if args.inputPath != "" {
		raw, err := os.ReadFile(args.inputPath)
		if err != nil {
			return status.Wrap(status.BinaryFileIOError, "reading input file", err)
		}
		inputFormat, err := format.ExtensionOfPath(args.inputPath)
		if err != nil {
			return err
		}
		data, header, err = format.Parse(kind, inputFormat, raw)
		if err != nil {
			return err
		}
	}

	slog.Debug("dispatching transform", "kind", kind.String(), "command", cmd.String())
	if err := rng.Init(nil); err != nil {
		return err
	}
	defer rng.Free()

	data, header, err = dispatch.Transform(kind, cmd, data, header, dispatch.Extra{UUID: uuid, Keys: keys})
	if err != nil {
		return err
	}

	if args.outputPath == "" {
		fmt.Println("transform completed; no --output given, discarding result")
		return nil
	}

	outputFormat, err := parseOutputFormat(args.outputForm)
	if err != nil {
		return err
	}
	out, err := format.Serialize(kind, outputFormat, data, header)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args.outputPath, out, 0o644); err != nil {
		return status.Wrap(status.BinaryFileIOError, "writing output file", err)
	}
	return nil
}

func parseTagKind(s string) (tagmodel.TagKind, error) {
	switch strings.ToLower(s) {
	case "":
		return tagmodel.TagUnspecified, nil
	case "ntag215":
		return tagmodel.TagNTAG215, nil
	case "mfc1k":
		return tagmodel.TagMFC1K, nil
	case "amiibo":
		return tagmodel.TagAmiibo, nil
	default:
		return tagmodel.TagUnknown, status.New(status.UnknownEnumError, "unknown --input-type: "+s)
	}
}

func parseTransformCommand(s string) (tagmodel.TransformCommand, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return tagmodel.CmdNone, nil
	case "generate":
		return tagmodel.CmdGenerate, nil
	case "randomize-uid":
		return tagmodel.CmdRandomizeUID, nil
	case "wipe":
		return tagmodel.CmdWipe, nil
	default:
		return tagmodel.CmdNone, status.New(status.UnknownEnumError, "unknown --transform: "+s)
	}
}

func parseOutputFormat(s string) (tagmodel.FileFormat, error) {
	switch strings.ToLower(s) {
	case "binary":
		return tagmodel.FormatBinary, nil
	case "json":
		return tagmodel.FormatJSON, nil
	case "nfc":
		return tagmodel.FormatNFC, nil
	case "eml":
		return tagmodel.FormatEML, nil
	default:
		return tagmodel.FormatUnknown, status.New(status.FileFormatError, "unknown --output-format: "+s)
	}
}

// exitCode maps a status.Kind to a process exit code: 0 is reserved for
// success, so every failure path returns at least 1.
func exitCode(err error) int {
	var se *status.Error
	if !errors.As(err, &se) {
		return 1
	}
	return int(se.Kind) + 1
}
