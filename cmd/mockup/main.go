package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	mockup "github.com/artisanprints/print-mockup-go"
)

// go run ./cmd/mockup photo.png --interactive
// go run ./cmd/mockup photo.png --all --no-watermark
// go run ./cmd/mockup photo.png --sizes popular --center --text "MyShop.etsy.com" --opacity 150
// go run ./cmd/mockup photo.png --sizes 8x10 --ribbon --ribbons 6 --angle 0

type options struct {
	Interactive bool   `mapstructure:"interactive"`
	All         bool   `mapstructure:"all"`
	Sizes       string `mapstructure:"sizes"`
	NoWatermark bool   `mapstructure:"no-watermark"`
	Center      bool   `mapstructure:"center"`
	Ribbon      bool   `mapstructure:"ribbon"`
	Text        string `mapstructure:"text"`
	Opacity     int    `mapstructure:"opacity"`
	Ribbons     int    `mapstructure:"ribbons"`
	Angle       int    `mapstructure:"angle"`
	Output      string `mapstructure:"output"`
}

func main() {
	pflag.Bool("interactive", false, "Prompt for size and watermark choices")
	pflag.Bool("all", false, "Generate all 9 print sizes")
	pflag.String("sizes", "", "Size preset (popular|small|large) or comma-separated labels")
	pflag.Bool("no-watermark", false, "Clean images without watermarks")
	pflag.Bool("center", false, "Single centered watermark")
	pflag.Bool("ribbon", false, "Tiled ribbon watermarks")
	pflag.StringP("text", "t", "", "Watermark text")
	pflag.Int("opacity", 120, "Watermark opacity (50-255)")
	pflag.Int("ribbons", 5, "Number of ribbons (3-10)")
	pflag.Int("angle", 0, "Ribbon angle in degrees (-45 to 45)")
	pflag.StringP("output", "o", "", "Directory to create the output folder in")
	pflag.Parse()

	if err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "read config: %v\n", err)
		os.Exit(1)
	}

	var opts options
	if err := viper.Unmarshal(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "parse options: %v\n", err)
		os.Exit(1)
	}

	if pflag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	input := pflag.Arg(0)

	if _, err := os.Stat(input); err != nil {
		fmt.Fprintf(os.Stderr, "input file: %v\n", err)
		os.Exit(1)
	}

	var (
		sel  mockup.Selection
		spec mockup.Spec
		err  error
	)

	if opts.Interactive {
		in := bufio.NewReader(os.Stdin)

		sel, err = promptSizes(in)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		spec, err = promptWatermark(in, opts.Text)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		sel, err = resolveSizes(opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		spec = resolveSpec(opts)
	}

	if spec.Style != mockup.StyleNone && spec.Text == "" {
		fmt.Fprintln(os.Stderr, "watermark text required: pass --text or use --interactive")
		os.Exit(1)
	}

	fmt.Printf("Processing %s: %d sizes, %s\n", input, sel.Len(), describeSpec(spec))

	pipe := mockup.NewPipeline()
	pipe.OutputRoot = opts.Output
	pipe.Progress = func(label, path string) {
		fmt.Printf("  saved %s -> %s\n", label, path)
	}

	written, err := pipe.Run(input, sel, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run failed after %d file(s): %v\n", len(written), err)
		os.Exit(1)
	}

	fmt.Printf("Done. Created %d image(s) in %s\n",
		len(written), mockup.OutputDirName(input, spec.Style))
}

// loadConfig reads an optional mockup.yaml from the working directory and
// binds the flag set into viper so config values back the flags.
func loadConfig() error {
	viper.SetConfigName("mockup")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return viper.BindPFlags(pflag.CommandLine)
}

// resolveSizes maps the non-interactive size flags onto an ordered
// selection. With no size flags the full table is used.
func resolveSizes(opts options) (mockup.Selection, error) {
	if opts.All || opts.Sizes == "" {
		return mockup.AllSizes(), nil
	}

	switch opts.Sizes {
	case "popular":
		return mockup.SelectSizes(mockup.PopularSizes...)
	case "small":
		return mockup.SelectSizes(mockup.SmallSizes...)
	case "large":
		return mockup.SelectSizes(mockup.LargeSizes...)
	}

	labels := strings.Split(opts.Sizes, ",")
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
	}
	return mockup.SelectSizes(labels...)
}

// resolveSpec maps the watermark flags onto a Spec, clamping out-of-range
// values the same way the prompts do.
func resolveSpec(opts options) mockup.Spec {
	switch {
	case opts.Center:
		return mockup.CenterWatermark(opts.Text, opts.Opacity)
	case opts.Ribbon:
		return mockup.RibbonWatermark(opts.Text, opts.Opacity, opts.Ribbons, opts.Angle)
	default:
		return mockup.NoWatermark()
	}
}

func describeSpec(spec mockup.Spec) string {
	switch spec.Style {
	case mockup.StyleCenter:
		return fmt.Sprintf("center watermark %q (opacity %d)", spec.Text, spec.Opacity)
	case mockup.StyleRibbon:
		return fmt.Sprintf("ribbon watermark %q (opacity %d, %d ribbons, angle %d)",
			spec.Text, spec.Opacity, spec.RibbonCount, spec.AngleDegrees)
	default:
		return "no watermark"
	}
}

func promptSizes(in *bufio.Reader) (mockup.Selection, error) {
	fmt.Println("\nSize selection")
	fmt.Println("  1. All 9 sizes")
	fmt.Println("  2. Popular sizes (5x7, 8x10, 11x14, 16x20)")
	fmt.Println("  3. Small sizes (5x7, 8x10, 8.5x11)")
	fmt.Println("  4. Large sizes (16x20, 18x24, 20x24, 24x36)")
	fmt.Println("  5. Single size")

	for {
		choice, err := promptLine(in, "Enter your choice (1-5): ")
		if err != nil {
			return mockup.Selection{}, err
		}

		switch choice {
		case "1", "":
			return mockup.AllSizes(), nil
		case "2":
			return mockup.SelectSizes(mockup.PopularSizes...)
		case "3":
			return mockup.SelectSizes(mockup.SmallSizes...)
		case "4":
			return mockup.SelectSizes(mockup.LargeSizes...)
		case "5":
			return promptSingleSize(in)
		default:
			fmt.Println("Please enter a number between 1 and 5")
		}
	}
}

func promptSingleSize(in *bufio.Reader) (mockup.Selection, error) {
	fmt.Println("\nChoose a single size:")
	for i, label := range mockup.SizeLabels {
		fmt.Printf("  %d. %s\n", i+1, label)
	}

	for {
		choice, err := promptLine(in, fmt.Sprintf("Enter size number (1-%d): ", len(mockup.SizeLabels)))
		if err != nil {
			return mockup.Selection{}, err
		}

		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(mockup.SizeLabels) {
			fmt.Println("Please enter a valid size number")
			continue
		}
		return mockup.SelectSizes(mockup.SizeLabels[idx-1])
	}
}

func promptWatermark(in *bufio.Reader, defaultText string) (mockup.Spec, error) {
	fmt.Println("\nWatermark style")
	fmt.Println("  1. No watermarks (clean images)")
	fmt.Println("  2. Center watermark")
	fmt.Println("  3. Ribbon watermarks")

	for {
		choice, err := promptLine(in, "Enter your choice (1-3): ")
		if err != nil {
			return mockup.Spec{}, err
		}

		switch choice {
		case "1", "":
			return mockup.NoWatermark(), nil
		case "2":
			text, err := promptText(in, defaultText)
			if err != nil {
				return mockup.Spec{}, err
			}
			opacity, err := promptInt(in, "Opacity 50-255 (default 150): ", 150)
			if err != nil {
				return mockup.Spec{}, err
			}
			return mockup.CenterWatermark(text, opacity), nil
		case "3":
			text, err := promptText(in, defaultText)
			if err != nil {
				return mockup.Spec{}, err
			}
			opacity, err := promptInt(in, "Opacity 50-255 (default 120): ", 120)
			if err != nil {
				return mockup.Spec{}, err
			}
			ribbons, err := promptInt(in, "Number of ribbons 3-10 (default 5): ", 5)
			if err != nil {
				return mockup.Spec{}, err
			}
			angle, err := promptInt(in, "Ribbon angle -45 to 45 (default 0): ", 0)
			if err != nil {
				return mockup.Spec{}, err
			}
			return mockup.RibbonWatermark(text, opacity, ribbons, angle), nil
		default:
			fmt.Println("Please enter a number between 1 and 3")
		}
	}
}

func promptText(in *bufio.Reader, fallback string) (string, error) {
	prompt := "Watermark text: "
	if fallback != "" {
		prompt = fmt.Sprintf("Watermark text (default %q): ", fallback)
	}

	for {
		text, err := promptLine(in, prompt)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
		if fallback != "" {
			return fallback, nil
		}
		fmt.Println("Please enter the watermark text")
	}
}

func promptInt(in *bufio.Reader, prompt string, fallback int) (int, error) {
	for {
		raw, err := promptLine(in, prompt)
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return fallback, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Please enter a valid number")
			continue
		}
		return v, nil
	}
}

func promptLine(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input cancelled")
	}
	return strings.TrimSpace(line), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mockup <image> [flags]")
	fmt.Fprintln(os.Stderr, "")
	pflag.PrintDefaults()
}
