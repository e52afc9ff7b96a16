package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/darrenoakey/generate-image/internal/config"
	"github.com/darrenoakey/generate-image/internal/credentials"
	"github.com/darrenoakey/generate-image/internal/image"
	"github.com/darrenoakey/generate-image/internal/input"
)

// Dimensions above this print a warning; the API canvas tops out at 1536 so
// anything larger is upscale-by-crop territory.
const maxRecommendedDimension = 2048

var (
	genFilename string
	genWidth    int
	genHeight   int
	genQuality  string
	genDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "generate-image <prompt>",
	Short: "Generate an image from a text prompt",
	Long: `generate-image sends a prompt to OpenAI's image API and writes the result
to disk, optionally cropped to exact pixel dimensions.

Examples:
  generate-image a robot cat on a rainbow
  generate-image "sunset over mountains" --width 1920 --height 1080
  generate-image "logo design" --filename logo.png
  echo "a sunset" | generate-image                # prompt from stdin`,
	Args: cobra.ArbitraryArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&genFilename, "filename", "", "Output path (default: generated_image_<N>.png in the working directory)")
	rootCmd.Flags().IntVar(&genWidth, "width", 0, "Exact output width in pixels (requires --height)")
	rootCmd.Flags().IntVar(&genHeight, "height", 0, "Exact output height in pixels (requires --width)")
	rootCmd.Flags().StringVar(&genQuality, "quality", "", "Quality hint passed to the API (auto, low, medium, high)")
	rootCmd.Flags().BoolVarP(&genDebug, "debug", "d", false, "Show debug information")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	if prompt == "" {
		stdinContent, err := input.ReadStdin()
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		prompt = strings.TrimSpace(stdinContent)
	}
	if prompt == "" {
		return fmt.Errorf("prompt required: provide as argument or via stdin")
	}

	widthSet := cmd.Flags().Changed("width")
	heightSet := cmd.Flags().Changed("height")
	if err := validateDimensions(widthSet, heightSet, genWidth, genHeight); err != nil {
		return err
	}

	exact := widthSet && heightSet
	if exact && (genWidth > maxRecommendedDimension || genHeight > maxRecommendedDimension) {
		fmt.Fprintf(os.Stderr, "Warning: %dx%d exceeds %d pixels on a side; the image will be generated at a supported size and cropped to fit\n",
			genWidth, genHeight, maxRecommendedDimension)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	apiKey := cfg.OpenAI.APIKey
	if apiKey == "" {
		apiKey, err = credentials.GetOpenAIKey(credentials.SystemKeyring{})
		if err != nil {
			return err
		}
	}

	var width, height int
	if exact {
		width, height = genWidth, genHeight
	}
	size := image.SelectGenerationSize(width, height)

	apiPrompt := prompt
	if exact {
		apiPrompt = fmt.Sprintf("%s The image should have an aspect ratio of %d:%d.", prompt, width, height)
	}

	quality := cfg.OpenAI.Quality
	if genQuality != "" {
		quality = genQuality
	}

	client := image.NewOpenAIClient(apiKey, cfg.OpenAI.Model)

	if genDebug {
		fmt.Fprintf(os.Stderr, "Using provider: %s\n", client.Name())
		fmt.Fprintf(os.Stderr, "Prompt: %q\n", apiPrompt)
		fmt.Fprintf(os.Stderr, "Generation size: %s\n", size)
	}

	result, err := runWithSpinner(ctx, func() (*image.Result, error) {
		return client.Generate(ctx, image.GenerateRequest{
			Prompt:  apiPrompt,
			Size:    size,
			Quality: quality,
			Debug:   genDebug,
		})
	}, "Generating image")
	if err != nil {
		return fmt.Errorf("image generation failed: %w", err)
	}

	img, err := image.Decode(result.Data)
	if err != nil {
		return fmt.Errorf("failed to decode generated image: %w", err)
	}

	if exact && (width != size.Width || height != size.Height) {
		img = image.FitExact(img, width, height)
	}

	outputPath := genFilename
	if outputPath == "" {
		outputPath, err = image.NextDefaultFilename(".", image.OSListDir)
		if err != nil {
			return err
		}
	}

	outputPath, flatten := applyAlphaPolicy(outputPath, image.HasAlpha(img))
	if flatten {
		img = image.FlattenOnWhite(img)
	}

	data, err := image.Encode(img, strings.ToLower(filepath.Ext(outputPath)))
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Saved to: %s\n", outputPath)
	return nil
}

// validateDimensions enforces the CLI dimension contract: width and height
// must be supplied together, and both must be positive.
func validateDimensions(widthSet, heightSet bool, width, height int) error {
	if widthSet != heightSet {
		return fmt.Errorf("--width and --height must be supplied together")
	}
	if !widthSet {
		return nil
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("--width and --height must be positive integers")
	}
	return nil
}

// applyAlphaPolicy decides the final output path and whether the image must
// be flattened onto white before encoding. JPEG can't carry transparency, so
// alpha is either flattened (JPEG-family extension) or preserved by forcing
// the extension to .png.
func applyAlphaPolicy(path string, hasAlpha bool) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return path + ".png", false
	}
	if !hasAlpha {
		return path, false
	}
	switch ext {
	case ".jpg", ".jpeg":
		return path, true
	case ".png":
		return path, false
	default:
		return path[:len(path)-len(ext)] + ".png", false
	}
}
