package cmds

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-cpuid/cpuid/pkg/config"
	"github.com/go-cpuid/cpuid/pkg/cpuid"
	"github.com/go-cpuid/cpuid/pkg/cpuid/dump"
	"github.com/go-cpuid/cpuid/pkg/logflags"
	"github.com/go-cpuid/cpuid/pkg/version"
	"github.com/spf13/cobra"
)

var (
	// log is whether to log debug statements.
	log bool
	// logOutput is a comma separated list of components that should produce debug output.
	logOutput string
	// logDest is the file path or file descriptor where logs should go.
	logDest string
	// cpuNum is the CPU the querying thread is pinned to before any
	// leaf is read, or -1 to query wherever the scheduler put us.
	cpuNum int
	// inputFile is a dump file decoded instead of the local processor.
	inputFile string
	// outputFile is where the dump subcommand writes its capture.
	outputFile string
	// outputFormat is the serialization used by the dump subcommand.
	outputFormat formatFlag

	// rootCommand is the root of the command tree.
	rootCommand *cobra.Command

	conf *config.Config
)

const cpuidCommandLongDesc = `cpuid decodes the identification and capability leaves the processor
reports through the CPUID instruction.

Run without arguments it queries the local processor and prints every
leaf it knows how to decode: vendor and brand identification, feature
flags, the cache and TLB hierarchy, topology enumeration and the
vendor-specific extended leaves.

The dump subcommand captures the raw leaves instead, so a machine's
profile can be decoded offline with ` + "`cpuid --input`" + ` or diffed
against another machine.`

// New returns an initialized command tree.
func New() *cobra.Command {
	// Config setup and load.
	conf = config.LoadConfig()

	// Main cpuid root command.
	rootCommand = &cobra.Command{
		Use:   "cpuid",
		Short: "cpuid decodes x86 processor identification leaves.",
		Long:  cpuidCommandLongDesc,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logflags.Setup(log, logOutput, logDest); err != nil {
				return err
			}
			if cpuNum >= 0 && inputFile == "" {
				if err := pinToCPU(cpuNum); err != nil {
					return fmt.Errorf("could not pin to cpu %d: %v", cpuNum, err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logflags.Close()
		},
		RunE: reportCmd,
	}

	rootCommand.PersistentFlags().BoolVarP(&log, "log", "", false, "Enable debug logging.")
	rootCommand.PersistentFlags().StringVarP(&logOutput, "log-output", "", "", "Comma separated list of components that should produce debug output (decoder, dump).")
	rootCommand.PersistentFlags().StringVarP(&logDest, "log-dest", "", "", "Writes logs to the specified file or file descriptor.")
	rootCommand.PersistentFlags().IntVar(&cpuNum, "cpu", -1, "Pin to the given CPU before querying (linux only).")
	rootCommand.Flags().StringVarP(&inputFile, "input", "i", "", "Decode a dump file instead of the local processor.")

	// 'dump' subcommand.
	dumpCommand := &cobra.Command{
		Use:   "dump",
		Short: "Captures the raw CPUID leaves of the local processor.",
		Long: `Captures the raw CPUID leaves of the local processor and serializes
them, so they can be decoded offline with 'cpuid --input' on any
machine.

The output format is taken from the --format flag, then from the file
extension, then from the configuration file, and defaults to yaml.`,
		RunE: dumpCmd,
	}
	dumpCommand.Flags().StringVarP(&outputFile, "output", "o", "", "Output path for the dump (default stdout, or dump-dir from the config file).")
	dumpCommand.Flags().Var(&outputFormat, "format", "Serialization format, yaml or json.")
	rootCommand.AddCommand(dumpCommand)

	// 'version' subcommand.
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cpuid\n%s\n", version.CpuidVersion)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				fmt.Printf("Build Details: %s\n", version.BuildInfo())
			}
		},
	}
	versionCommand.Flags().BoolP("verbose", "v", false, "Print module and toolchain details.")
	rootCommand.AddCommand(versionCommand)

	return rootCommand
}

// openSource returns the leaf source the root command decodes: the
// local processor, or a replayed dump when --input is given.
func openSource() (cpuid.LeafSource, error) {
	if inputFile == "" {
		return cpuid.NativeSource(), nil
	}
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := dump.Read(f, fileFormat(inputFile))
	if err != nil {
		return nil, fmt.Errorf("could not read dump %s: %v", inputFile, err)
	}
	return d.Source(), nil
}

// fileFormat resolves the serialization format for path: the --format
// flag wins, then the file extension, then the config file, then yaml.
func fileFormat(path string) string {
	if outputFormat != "" {
		return string(outputFormat)
	}
	if filepath.Ext(path) == ".json" {
		return dump.FormatJSON
	}
	if conf.Format != "" {
		return conf.Format
	}
	return dump.FormatYAML
}

func dumpCmd(cmd *cobra.Command, args []string) error {
	d := dump.Capture(cpuid.NativeSource())

	if outputFile == "" && conf.DumpDir != "" {
		outputFile = filepath.Join(conf.DumpDir, "cpuid.yml")
	}
	if outputFile == "" {
		return d.Write(os.Stdout, fileFormat(""))
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.Write(f, fileFormat(outputFile))
}

func reportCmd(cmd *cobra.Command, args []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	id := cpuid.NewFromSource(src)
	if logflags.Decoder() {
		logflags.DecoderLogger().Debugf("vendor %s max leaf %#x max extended leaf %#x",
			id.Vendor(), id.MaxLeaf(), id.MaxExtendedLeaf())
	}
	newReporter(conf).report(id)
	return nil
}
