package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arifmia1129/amiuddokta-server-sub002/internal/infrastructure/imaging"
	"github.com/arifmia1129/amiuddokta-server-sub002/internal/pkg/config"

	"github.com/spf13/cobra"
)

// ConvertWebPCmd converts a local image with the upload pipeline settings.
func ConvertWebPCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	maxWidth, err := cmd.Flags().GetInt("max-width")
	if err != nil {
		return fmt.Errorf("invalid max-width flag: %w", err)
	}
	quality, err := cmd.Flags().GetInt("quality")
	if err != nil {
		return fmt.Errorf("invalid quality flag: %w", err)
	}

	log, err := setupLogger(nil)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	if outputFilePath == "" {
		outputFilePath = strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + ".webp"
	}

	in, err := os.Open(filepath.Clean(inputFilePath))
	if err != nil {
		return err
	}
	defer in.Close()

	processor := imaging.NewWebPProcessor(&config.UploadSettings{MaxWidth: maxWidth, Quality: quality})
	img, err := processor.ToWebP(in)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFilePath, img.Data, 0600); err != nil {
		return err
	}
	log.Info("WebP image saved", "path", outputFilePath, "width", img.Width, "height", img.Height, "bytes", len(img.Data))
	return nil
}

// InitMediaCommands registers the webp command.
func InitMediaCommands(rootCmd *cobra.Command) error {
	var webpCmd = &cobra.Command{
		Use:   "webp",
		Short: "Convert an image to WebP like the upload endpoint does",
		RunE:  ConvertWebPCmd,
	}
	webpCmd.Flags().StringP("input-file", "", "", "Path to a jpeg, png, gif or webp image")
	webpCmd.Flags().StringP("output-file", "", "", "Output path (defaults to the input path with a .webp extension)")
	webpCmd.Flags().IntP("max-width", "", 1920, "Downscale wider images to this width (0 keeps the size)")
	webpCmd.Flags().IntP("quality", "", 80, "WebP quality between 1 and 100")
	if err := webpCmd.MarkFlagRequired("input-file"); err != nil {
		return fmt.Errorf("failed to mark input-file required: %w", err)
	}
	rootCmd.AddCommand(webpCmd)

	return nil
}
